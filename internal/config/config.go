package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings" // strings splits list-valued variables
    "time"    // time parses duration-valued variables
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The types reflect how the values are used
// in the application: strings for identifiers and secrets, ints for
// durations and costs.
type Config struct {
    Env            string // application environment (e.g. "dev", "prod")
    Port           string // HTTP port to listen on
    DBUser         string // database username
    DBPass         string // database password (optional)
    DBHost         string // database host address
    DBPort         string // database port number
    DBName         string // database name
    JWTSecret      string // secret used to sign JWTs
    AccessTTLMin   int    // access token time-to-live in minutes
    RefreshTTLDays int    // refresh token time-to-live in days
    BcryptCost     int    // bcrypt cost for password hashing

    SMTPHost  string // SMTP server host
    SMTPPort  int    // SMTP server port
    SMTPUser  string // SMTP username (empty disables auth)
    SMTPPass  string // SMTP password
    EmailFrom string // verified sender address
    EmailName string // display name on outgoing mail

    StudioName    string   // studio display name used in emails
    StudioAddress string   // street address shown in reminder emails
    StudioPhone   string   // phone number shown in reminder emails
    StudioWebsite string   // public website URL
    AdminEmails   []string // studio inbox addresses for notifications

    ReminderSendDelay time.Duration // pause between consecutive reminder sends
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),      // environment (dev/test/prod)
        Port:           must("APP_PORT"),     // port to bind the HTTP server
        DBUser:         must("DB_USER"),      // database user
        DBPass:         os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:         must("DB_HOST"),      // database host
        DBPort:         must("DB_PORT"),      // database port
        DBName:         must("DB_NAME"),      // database name
        JWTSecret:      must("JWT_SECRET"),   // secret used for signing JWTs
        AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),   // TTL for access tokens in minutes
        RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"), // TTL for refresh tokens in days
        BcryptCost:     mustInt("BCRYPT_COST"),            // bcrypt cost factor

        SMTPHost:  must("SMTP_HOST"),
        SMTPPort:  mustInt("SMTP_PORT"),
        SMTPUser:  os.Getenv("SMTP_USER"),
        SMTPPass:  os.Getenv("SMTP_PASS"),
        EmailFrom: must("EMAIL_FROM"), // must be verified with the mail provider
        EmailName: getenv("EMAIL_FROM_NAME", "Francis Lozano Studio"),

        StudioName:    getenv("STUDIO_NAME", "Francis Lozano Studio"),
        StudioAddress: os.Getenv("STUDIO_ADDRESS"),
        StudioPhone:   os.Getenv("STUDIO_PHONE"),
        StudioWebsite: os.Getenv("STUDIO_WEBSITE"),
        AdminEmails:   parseList(must("ADMIN_EMAILS")),

        // Throttle between reminder emails so the provider's rate
        // limits are not tripped when several clients are due at once.
        ReminderSendDelay: envDur("REMINDER_SEND_DELAY", 3*time.Second),
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an
// integer. If conversion fails, the application logs a fatal error and
// exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// parseList splits a comma-separated variable into trimmed non-empty
// values.
func parseList(s string) []string {
    out := make([]string, 0)
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
