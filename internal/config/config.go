// Package config собирает настройки процесса: значения по умолчанию,
// файл .env, флаги командной строки и переменные окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	"github.com/ridwaanhall/SpaceX/internal/upstream"
	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultRunAddr  = ":8080"
	DefaultGRPCAddr = ":3200"
	DefaultLogLevel = "info"
	DefaultEnvFile  = ".env"
)

var ErrMissingSecret = errors.New("secret key is required (SECRET_KEY or -s)")

// Config содержит настройки приложения
type Config struct {
	RunAddr         string
	GRPCAddr        string
	SecretKey       string
	EndpointsFile   string
	UpstreamTimeout time.Duration
	IsAvailable     bool
	LogLevel        string
	UserAgent       string
	// Endpoints - шифртексты из EndpointsFile поверх встроенных
	Endpoints map[endpoint.Kind]string
}

// String скрывает секрет при выводе настроек
func (c Config) String() string {
	return fmt.Sprintf("Config{RunAddr:%s GRPCAddr:%s EndpointsFile:%q UpstreamTimeout:%s IsAvailable:%t LogLevel:%s}",
		c.RunAddr, c.GRPCAddr, c.EndpointsFile, c.UpstreamTimeout, c.IsAvailable, c.LogLevel)
}

// NewConfig создаёт Config из аргументов процесса, окружения и файла .env
func NewConfig() (*Config, error) {
	dotenv, err := readDotenv(DefaultEnvFile)
	if err != nil {
		return nil, err
	}
	getenv := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}
	return Load(os.Args[1:], getenv)
}

// readDotenv читает файл .env, отсутствие файла не ошибка
func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

// Load разбирает флаги args и применяет поверх них переменные окружения.
// Переменные окружения имеют приоритет над флагами.
func Load(args []string, getenv func(string) string) (*Config, error) {
	flags := flag.NewFlagSet("spacex", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flagRunAddr := flags.String("a", DefaultRunAddr, "address and port to run HTTP server")
	flagGRPCAddr := flags.String("g", DefaultGRPCAddr, "address and port to run gRPC server")
	flagSecret := flags.String("s", "", "secret key for endpoint decryption")
	flagEndpoints := flags.String("e", "", "path to YAML file with endpoint ciphertexts")
	flagTimeout := flags.String("t", upstream.DefaultTimeout.String(), "upstream request timeout")
	flagAvailable := flags.Bool("available", true, "serve data routes (false leaves only the root index)")
	flagLogLevel := flags.String("l", DefaultLogLevel, "log level")
	flagUserAgent := flags.String("ua", upstream.DefaultUserAgent, "User-Agent for upstream requests")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg := &Config{
		RunAddr:       pick(getenv("SERVER_ADDRESS"), *flagRunAddr),
		GRPCAddr:      pick(getenv("GRPC_ADDRESS"), *flagGRPCAddr),
		SecretKey:     pick(getenv("SECRET_KEY"), *flagSecret),
		EndpointsFile: pick(getenv("ENDPOINTS_FILE"), *flagEndpoints),
		LogLevel:      strings.ToLower(pick(getenv("LOG_LEVEL"), *flagLogLevel)),
		UserAgent:     pick(getenv("UPSTREAM_USER_AGENT"), *flagUserAgent),
		IsAvailable:   *flagAvailable,
	}

	timeout, err := parseTimeout(pick(getenv("UPSTREAM_TIMEOUT"), *flagTimeout))
	if err != nil {
		return nil, err
	}
	cfg.UpstreamTimeout = timeout

	if v := getenv("IS_AVAILABLE"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("IS_AVAILABLE: %w", err)
		}
		cfg.IsAvailable = available
	}

	// Валидация значений
	cfg.RunAddr = normalizeAddr(cfg.RunAddr)
	cfg.GRPCAddr = normalizeAddr(cfg.GRPCAddr)
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}

	if cfg.EndpointsFile != "" {
		endpoints, err := LoadEndpoints(cfg.EndpointsFile)
		if err != nil {
			return nil, err
		}
		cfg.Endpoints = endpoints
	}

	return cfg, nil
}

func pick(env, flagValue string) string {
	if env != "" {
		return env
	}
	return flagValue
}

// normalizeAddr дополняет порт без хоста двоеточием
func normalizeAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}

// parseTimeout принимает длительность Go или целое число секунд
func parseTimeout(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		s = strconv.Itoa(secs) + "s"
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("upstream timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("upstream timeout must be positive, got %s", d)
	}
	return d, nil
}

// endpointsFile - формат файла с шифртекстами
type endpointsFile struct {
	Endpoints map[string]string `yaml:"endpoints"`
}

// LoadEndpoints читает YAML-файл вида
//
//	endpoints:
//	  stats: gAAAAA...
//	  launch-detail: gAAAAA...
func LoadEndpoints(path string) (map[endpoint.Kind]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}
	return ParseEndpoints(data)
}

// ParseEndpoints разбирает содержимое файла с шифртекстами
func ParseEndpoints(data []byte) (map[endpoint.Kind]string, error) {
	var file endpointsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse endpoints file: %w", err)
	}

	out := make(map[endpoint.Kind]string, len(file.Endpoints))
	for name, token := range file.Endpoints {
		kind, err := endpoint.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("parse endpoints file: %w", err)
		}
		if token = strings.TrimSpace(token); token == "" {
			return nil, fmt.Errorf("parse endpoints file: empty ciphertext for %s", kind)
		}
		out[kind] = token
	}
	return out, nil
}
