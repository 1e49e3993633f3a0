package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvVars struct {
	Host        string
	HTTPPort    int
	GrpcPort    int
	RabbitHost  string
	RabbitUser  string
	RabbitPass  string
	JobQueue    string
	ResultQueue string
	Verbose     bool
}

// ReadEnvVars loads the serve configuration from the environment.
// RABBIT_HOST is optional: when unset the queue worker stays disabled.
func ReadEnvVars() EnvVars {
	// Loading .env file if it exists
	// It will not override already existing env vars
	_ = godotenv.Load()
	host := readStringEnvVarOr("HOST", "")
	httpPort := ReadIntEnvVarOr("HTTP_PORT", 8080)
	grpcPort := ReadIntEnvVarOr("GRPC_PORT", 1234)
	rabbitHost := readStringEnvVarOr("RABBIT_HOST", "")
	rabbitUser := readStringEnvVarOr("RABBIT_USER", "guest")
	rabbitPass := readStringEnvVarOr("RABBIT_PASSWORD", "guest")
	jobQueue := readStringEnvVarOr("JOB_QUEUE", "jobs")
	resultQueue := readStringEnvVarOr("RESULT_QUEUE", "results")
	verbose := readBoolEnvVarOr("VERBOSE", false)
	return EnvVars{
		Host: host, HTTPPort: httpPort, GrpcPort: grpcPort,
		RabbitHost: rabbitHost, RabbitUser: rabbitUser, RabbitPass: rabbitPass,
		JobQueue: jobQueue, ResultQueue: resultQueue,
		Verbose: verbose,
	}
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s not set", name)
	}
	return value, nil
}

func readIntEnvVar(name string) (int, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("could not convert %s to a number: %v", name, err)
	}
	return value, nil
}

func readStringEnvVarOr(name string, or string) string {
	value, err := readStringEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func ReadIntEnvVarOr(name string, or int) int {
	value, err := readIntEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func readBoolEnvVarOr(name string, or bool) bool {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or
	}
	return value
}
