package model

import "time"

// ContactMessage represents a row in the `contact_messages` table.
// Messages arrive through the public contact form and trigger a
// notification email to the studio inbox.
//
// Fields:
//  ID          – primary key identifier.
//  FirstName   – sender first name (required).
//  LastName    – sender last name (required).
//  Email       – sender email address (required).
//  Phone       – optional phone number.
//  Subject     – message subject (required).
//  Message     – message body (required).
//  InquiryType – what the message is about (required; e.g. "booking",
//                "pricing", "general").
//  IsRead      – set once an admin has opened the message.
//  CreatedAt   – creation timestamp.
type ContactMessage struct {
    ID          uint64    `json:"id"`
    FirstName   string    `json:"first_name"`
    LastName    string    `json:"last_name"`
    Email       string    `json:"email"`
    Phone       string    `json:"phone,omitempty"`
    Subject     string    `json:"subject"`
    Message     string    `json:"message"`
    InquiryType string    `json:"inquiry_type"`
    IsRead      bool      `json:"is_read"`
    CreatedAt   time.Time `json:"created_at"`
}
