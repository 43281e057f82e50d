package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.  The AWS block configures the image bucket, the SMTP block the
// outgoing mail transport.
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

    AWSRegion    string // region of the image bucket
    AWSAccessKey string // access key id for the bucket
    AWSSecretKey string // secret access key for the bucket
    AWSBucket    string // bucket holding room and gallery images
    PresignTTLMin int   // validity window of presigned image URLs in minutes

    SMTPHost   string // SMTP server host
    SMTPPort   int    // SMTP server port
    SMTPUser   string // SMTP username, also the From address
    SMTPPass   string // SMTP password
    StaffEmail string // address receiving booking alerts and contact mail

    AdminEmail    string // e-mail of the seeded administrator account
    AdminPassword string // password of the seeded administrator account
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
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

        AWSRegion:     must("AWS_REGION"),            // bucket region
        AWSAccessKey:  must("AWS_ACCESS_KEY_ID"),     // bucket access key
        AWSSecretKey:  must("AWS_SECRET_ACCESS_KEY"), // bucket secret key
        AWSBucket:     must("AWS_BUCKET_NAME"),       // bucket name
        PresignTTLMin: intOr("PRESIGN_TTL_MIN", 60),  // presigned URL validity, defaults to one hour

        SMTPHost:   must("SMTP_HOST"),    // outgoing mail host
        SMTPPort:   mustInt("SMTP_PORT"), // outgoing mail port
        SMTPUser:   must("SMTP_USER"),    // outgoing mail user / From
        SMTPPass:   os.Getenv("SMTP_PASS"),
        StaffEmail: must("STAFF_EMAIL"), // where booking alerts land

        AdminEmail:    must("ADMIN_EMAIL"),    // seeded admin account
        AdminPassword: must("ADMIN_PASSWORD"), // seeded admin password
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// intOr reads an optional integer variable and falls back to def when the
// variable is unset or malformed.
func intOr(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        return def
    }
    return n
}
