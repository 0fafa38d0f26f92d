package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS            = ""             // e.g. "example.com,example2.com"
	MYSQL_DSN              = ""             // MySQL will be used if this is set
	SQLITE_FILE            = "sevgi.sqlite" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS           = "0.0.0.0:8080"
	BASE_URL               = "http://localhost:8080" // used to build the link sent to the respondent
	DEBUG_MODE             = true
	QUIZ_SIZE              = 12
	TOKEN_MAX_TRIES        = 8
	SEED_QUESTIONS         = true  // insert the built-in question bank when the table is empty
	QUIZ_STABLE_PER_INVITE = false // derive the quiz sample from the invite token instead of fresh randomness
	PAYMENT_AMOUNT         = "14999"
	LOG_LEVEL              = "info"
	APP_ENV                = "development"
)

// Load reads an optional .env file and then overrides the defaults above from
// the environment. Variables already set in the environment win over .env.
func Load(envFiles ...string) {
	// .env is optional, missing file is fine
	_ = godotenv.Load(envFiles...)

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("BASE_URL", &BASE_URL)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("QUIZ_SIZE", &QUIZ_SIZE)
	readEnvInt("TOKEN_MAX_TRIES", &TOKEN_MAX_TRIES)
	readEnvBool("SEED_QUESTIONS", &SEED_QUESTIONS)
	readEnvBool("QUIZ_STABLE_PER_INVITE", &QUIZ_STABLE_PER_INVITE)
	readEnvString("PAYMENT_AMOUNT", &PAYMENT_AMOUNT)
	readEnvString("LOG_LEVEL", &LOG_LEVEL)
	readEnvString("APP_ENV", &APP_ENV)

	BASE_URL = strings.TrimRight(BASE_URL, "/")
	if QUIZ_SIZE <= 0 {
		QUIZ_SIZE = 12
	}
	if TOKEN_MAX_TRIES <= 0 {
		TOKEN_MAX_TRIES = 8
	}
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
