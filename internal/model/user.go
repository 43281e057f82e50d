package model

import "time"

// Role names stored on users and embedded in JWT role claims.  Guests
// register as clients; the single administrator account is seeded at
// startup.
const (
    RoleClient = "client"
    RoleAdmin  = "admin"
)

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column.  The json tags are omitted
// because these structs are used by the repository layer; handlers define
// separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  UserName     – unique public handle chosen at registration.
//  FirstName    – given name, used as the display name in mail and tokens.
//  LastName     – family name.
//  Phone        – contact phone number.
//  Email        – unique e-mail address.
//  Nationality  – free-text nationality supplied at registration.
//  PasswordHash – bcrypt hashed password.
//  Role         – "client" or "admin".
//  IsVerified   – whether the e-mail address has been confirmed.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    UserName     string    // users.user_name
    FirstName    string    // users.first_name
    LastName     string    // users.last_name
    Phone        string    // users.phone
    Email        string    // users.email
    Nationality  string    // users.nationality
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    IsVerified   bool      // users.is_verified
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// VerificationToken models an entry in the `verification_tokens` table.  A
// token proves control of the registered e-mail address and is deleted once
// consumed.  Nothing prevents several tokens per user; only the one
// presented at verification time matters.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  Token     – random hex credential mailed to the user.
//  CreatedAt – timestamp of creation, the basis for expiry decisions.
type VerificationToken struct {
    ID        uint64    // verification_tokens.id
    UserID    uint64    // verification_tokens.user_id
    Token     string    // verification_tokens.token
    CreatedAt time.Time // verification_tokens.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each refresh
// token belongs to a user and carries metadata for expiry and revocation.
// The plain token is not stored; only its SHA-256 hash.
type RefreshToken struct {
    ID        uint64     // refresh_tokens.id
    UserID    uint64     // refresh_tokens.user_id
    TokenHash string     // refresh_tokens.token_hash
    ExpiresAt time.Time  // refresh_tokens.expires_at
    RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt time.Time  // refresh_tokens.created_at
}
