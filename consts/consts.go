package consts

// PrincipalKind names an authenticatable identity namespace. Users and admins
// live in separate tables, so the same email may exist once in each.
type PrincipalKind string

const (
	USER  PrincipalKind = "user"
	ADMIN PrincipalKind = "admin"
)

// database drivers accepted in DB_DRIVER
const (
	MYSQL    = "mysql"
	POSTGRES = "postgres"
	SQLITE   = "sqlite3"
)

// table names
const (
	USERS_TABLE    = "user_register"
	ADMINS_TABLE   = "admin"
	MATCHES_TABLE  = "cricket_match"
	PAYMENTS_TABLE = "payment"
)

// QR_CODE_PATH is where the HTTP surface serves payment QR codes.
const QR_CODE_PATH = "/payment/payments/qr_code"
