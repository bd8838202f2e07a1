package Constants

import (
	"os"
	"strconv"

	"Brokerage/Models"
)

// Broker letterhead printed at the top of every confirmation note.
const (
	BrokerName    = "ANIL.A.SHAH"
	BrokerLine    = "Edible Oils, Seeds & Cake Brokers"
	BrokerAddr1   = "Post Box No.18, 68/39c, Mahaveer Colony"
	BrokerAddr2   = "Near Urban Bank"
	BrokerCity    = "Kurnool,(A.P) - 518001"
	BrokerPhone   = "Phone: 08518-244195"
	BrokerMobile  = "Mobile: 9848076195, 9440244284"
	BrokerEmail   = "Email : anilshahknl@gmail.com"
	BrokerSignoff = "ANIL A SHAH"
)

func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func DatabasePath() string {
	return Env("DB_PATH", "database.db")
}

func ListenAddress() string {
	return Env("HOST", "0.0.0.0") + ":" + Env("PORT", "4000")
}

// SMTPConfig reads the mail settings from the environment. SMTP_SERVER left
// empty disables the email endpoint.
func SMTPConfig() Models.EmailConfig {
	port, err := strconv.Atoi(Env("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return Models.EmailConfig{
		SMTPServer: Env("SMTP_SERVER", ""),
		SMTPPort:   port,
		Username:   Env("SMTP_USERNAME", ""),
		Password:   Env("SMTP_PASSWORD", ""),
		FromEmail:  Env("SMTP_FROM_EMAIL", ""),
		FromName:   Env("SMTP_FROM_NAME", BrokerName),
		TLSEnabled: Env("SMTP_TLS", "") == "true",
	}
}
