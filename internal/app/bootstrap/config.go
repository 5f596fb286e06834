// internal/app/bootstrap/config.go
package bootstrap

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// defaultDatabase is used when neither mongo_database nor the URI names one.
const defaultDatabase = "lessonshop"

// appConfigKeys defines the configuration keys for the lesson shop.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, public_dir, etc.
//   - Environment variables: LESSONS_MONGO_URI, LESSONS_PUBLIC_DIR, etc.
//   - Command-line flags: --mongo_uri, --public_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (falls back to MONGODB_URI)"},
	{Name: "mongo_database", Default: "", Desc: "MongoDB database name (default: database in the URI, else lessonshop)"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},

	{Name: "public_dir", Default: "public", Desc: "Directory of storefront assets served at /"},
	{Name: "lesson_images_dir", Default: "public/images/lessons", Desc: "Directory served at /images/lessons"},

	// WAFFLE's own cors_* keys default to CORS off; the storefront needs it on.
	{Name: "api_cors_origins", Default: "*", Desc: "Comma-separated origins allowed by CORS"},
}

// deployEnv is the plain environment the storefront has always been deployed
// with. WAFFLE loads .env itself, but only inside LoadWithAppConfig; it is
// loaded here first so MONGODB_URI and PORT can be bridged before WAFFLE reads
// its own keys.
type deployEnv struct {
	MongoDBURI string `envconfig:"MONGODB_URI"`
	Port       int    `envconfig:"PORT" default:"3000"`
}

// envPrefix prefixes both WAFFLE core and app environment variables.
const envPrefix = "LESSONS"

// httpPortEnv is WAFFLE's HTTP port under envPrefix.
const httpPortEnv = envPrefix + "_HTTP_PORT"

func loadDeployEnv(logger *zap.Logger) (deployEnv, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return deployEnv{}, errors.Wrap(err, "load .env")
		}
	} else {
		logger.Info("loaded environment from .env")
	}

	var env deployEnv
	if err := envconfig.Process("", &env); err != nil {
		return deployEnv{}, errors.Wrap(err, "process deploy env")
	}
	return env, nil
}

// bridgePort hands PORT to WAFFLE unless LESSONS_HTTP_PORT is set explicitly.
func bridgePort(env deployEnv) error {
	if _, ok := os.LookupEnv(httpPortEnv); ok {
		return nil
	}
	return errors.Wrap(os.Setenv(httpPortEnv, strconv.Itoa(env.Port)), "set http port")
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// MONGODB_URI and PORT are honoured as well: MONGODB_URI fills mongo_uri when
// that key is unset, and PORT (default 3000) becomes WAFFLE's HTTP port.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	env, err := loadDeployEnv(logger)
	if err != nil {
		return nil, AppConfig{}, err
	}
	if err := bridgePort(env); err != nil {
		return nil, AppConfig{}, err
	}

	coreCfg, appValues, err := config.LoadWithAppConfig(logger, envPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:           appValues.String("mongo_uri"),
		MongoDatabase:      appValues.String("mongo_database"),
		MongoMaxPoolSize:   uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize:   uint64(appValues.Int("mongo_min_pool_size")),
		PublicDir:          appValues.String("public_dir"),
		LessonImagesDir:    appValues.String("lesson_images_dir"),
		CORSAllowedOrigins: splitList(appValues.String("api_cors_origins")),
	}
	if appCfg.MongoURI == "" {
		appCfg.MongoURI = env.MongoDBURI
	}
	if appCfg.MongoURI != "" && appCfg.MongoDatabase == "" {
		appCfg.MongoDatabase = databaseName(appCfg.MongoURI)
	}

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n))
	}

	return coreCfg, appCfg, nil
}

// databaseName returns the database named in the URI path, or defaultDatabase.
func databaseName(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return defaultDatabase
	}
	return cs.Database
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is required and its format is checked here so that a bad
// value fails startup before any connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		return errors.New("mongo_uri is required (set LESSONS_MONGO_URI or MONGODB_URI)")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return errors.Wrap(err, "invalid MongoDB URI")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize && appCfg.MongoMaxPoolSize != 0 {
		return errors.Newf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	return nil
}
