package env

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort          = 8000
	defaultHTTPRootPath      = "/api"
	defaultMongoCollection   = "wedding"
	defaultJSONDatabasePath  = "./data/invitations.json"
	defaultLoadConfigTimeout = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

// Env model
type Env struct {
	ServiceName string
	// Env on application
	Environment       string
	LoadConfigTimeout time.Duration
	ShutdownTimeout   time.Duration

	DebugMode bool

	// HTTPPort config
	HTTPPort     uint16
	HTTPRootPath string

	// JaegerTracingHost env, tracing disabled when empty
	JaegerTracingHost string
	// JaegerMaxPacketSize env
	JaegerMaxPacketSize int

	// Database environment, in memory store with json snapshot used when DbMongoWriteHost is empty
	DbMongoWriteHost, DbMongoReadHost string
	DbMongoCollection                 string
	JSONDatabasePath                  string

	// CORS Environment
	CORSAllowOrigins, CORSAllowMethods, CORSAllowHeaders []string
	CORSAllowCredential                                  bool

	StartAt string
}

var env Env

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// UseMongo check primary document store is configured
func (e Env) UseMongo() bool {
	return e.DbMongoWriteHost != ""
}

// Load environment, panic when environment invalid
func Load(serviceName string) {
	// load main .env
	if err := godotenv.Load(os.Getenv(candihelper.WORKDIR) + ".env"); err != nil {
		log.Printf("Warning: load env, %v", err)
	}

	newEnv, err := Parse(serviceName)
	if err != nil {
		panic("Basic environment error: \n" + err.Error())
	}
	env = newEnv
}

// Parse environment variables of current process
func Parse(serviceName string) (Env, error) {
	var e Env
	mErrs := candihelper.NewMultiError()

	e.ServiceName = serviceName
	if name := os.Getenv("SERVICE_NAME"); name != "" {
		e.ServiceName = name
	}
	e.Environment = os.Getenv("ENVIRONMENT")

	e.LoadConfigTimeout = parseDuration(mErrs, "LOAD_CONFIG_TIMEOUT", defaultLoadConfigTimeout)
	e.ShutdownTimeout = parseDuration(mErrs, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout)

	e.DebugMode, _ = strconv.ParseBool(os.Getenv("DEBUG_MODE"))

	e.HTTPPort = defaultHTTPPort
	if httpPort, ok := os.LookupEnv("HTTP_PORT"); ok && httpPort != "" {
		port, err := strconv.ParseUint(httpPort, 10, 16)
		if err != nil || port == 0 {
			mErrs.Append("HTTP_PORT", errors.New("HTTP_PORT environment must be a valid port number"))
		}
		e.HTTPPort = uint16(port)
	}
	e.HTTPRootPath = defaultHTTPRootPath
	if rootPath := os.Getenv("HTTP_ROOT_PATH"); rootPath != "" {
		e.HTTPRootPath = rootPath
	}

	e.JaegerTracingHost = os.Getenv("JAEGER_TRACING_HOST")
	jaegerMaxpacketSize, err := strconv.Atoi(os.Getenv("JAEGER_MAX_PACKET_SIZE"))
	if err != nil || jaegerMaxpacketSize <= 0 {
		jaegerMaxpacketSize = 65000 // default max packet size of UDP
	}
	e.JaegerMaxPacketSize = jaegerMaxpacketSize * int(candihelper.Byte)

	parseDatabaseEnv(&e)
	if e.DbMongoWriteHost == "" && e.DbMongoReadHost != "" {
		mErrs.Append("MONGODB_HOST_WRITE", errors.New("MONGODB_HOST_READ is set, missing MONGODB_HOST_WRITE environment"))
	}

	parseCorsEnv(&e)

	e.StartAt = candihelper.FormatTimestamp(time.Now())

	if mErrs.HasError() {
		return e, mErrs
	}
	return e, nil
}

func parseDuration(mErrs candihelper.MultiError, envName string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(envName)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		mErrs.Append(envName, errors.New(envName+" environment must be a positive duration (example: 10s)"))
		return defaultValue
	}
	return d
}

func parseDatabaseEnv(e *Env) {
	e.DbMongoWriteHost = os.Getenv("MONGODB_HOST_WRITE")
	e.DbMongoReadHost = os.Getenv("MONGODB_HOST_READ")

	e.DbMongoCollection = os.Getenv("MONGODB_COLLECTION")
	if e.DbMongoCollection == "" {
		e.DbMongoCollection = defaultMongoCollection
	}

	e.JSONDatabasePath = os.Getenv("JSON_DATABASE_PATH")
	if e.JSONDatabasePath == "" {
		e.JSONDatabasePath = defaultJSONDatabasePath
	}
}

func parseCorsEnv(e *Env) {
	if e.CORSAllowOrigins = candihelper.ParseListEnv("CORS_ALLOW_ORIGINS"); len(e.CORSAllowOrigins) == 0 {
		e.CORSAllowOrigins = []string{"*"}
	}
	if e.CORSAllowMethods = candihelper.ParseListEnv("CORS_ALLOW_METHODS"); len(e.CORSAllowMethods) == 0 {
		e.CORSAllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		}
	}
	e.CORSAllowHeaders = candihelper.ParseListEnv("CORS_ALLOW_HEADERS")
	e.CORSAllowCredential, _ = strconv.ParseBool(os.Getenv("CORS_ALLOW_CREDENTIAL"))
}
