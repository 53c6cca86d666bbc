package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	UploadsDir      string
	ReceiptsDir     string
	AdminPassword   string
	ReceiptTTLHours int
}
