package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource        string
	Port            string
	JWTSecret       string
	JWTTTL          time.Duration
	CheckoutTimeout time.Duration
	QRPaymentRef    string // เลข PromptPay ที่โชว์ตอนเลือกจ่ายแบบ QR
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "food.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(24) * time.Hour,
		CheckoutTimeout: time.Duration(10) * time.Second,
		QRPaymentRef:    getEnv("QR_PAYMENT_REF", "004999999999999"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
