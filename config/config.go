package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the project config values. It is built once in main and handed
// to every component by pointer.
type Config struct {
	Env          string
	Port         string
	BaseURL      string
	URL          string
	DatabaseName string

	JWTSecret       string
	JWTExpire       time.Duration
	JWTCookieExpire int

	RequestTimeout time.Duration

	FileUploadPath string
	MaxFileUpload  int64
	PhotoStorage   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	GeocoderAPIKey string

	SendGridAPIKey string
	FromName       string
	FromEmail      string
}

// New sets up all config related services: it loads an optional .env file,
// reads the environment and installs the global zap logger.
func New() *Config {
	// a missing .env is fine, deployed environments set real variables
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("BASE_URL", "http://localhost:5000")
	v.SetDefault("JWT_EXPIRE", "720h")
	v.SetDefault("JWT_COOKIE_EXPIRE", 30)
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("FILE_UPLOAD_PATH", "./public/uploads")
	v.SetDefault("MAX_FILE_UPLOAD", 1000000)
	v.SetDefault("PHOTO_STORAGE", "disk")
	v.SetDefault("CLOUDINARY_FOLDER", "devcamper")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("FROM_NAME", "DevCamper")
	v.SetDefault("FROM_EMAIL", "noreply@devcamper.io")

	c := &Config{
		Env:                 strings.ToLower(v.GetString("ENV")),
		Port:                v.GetString("PORT"),
		BaseURL:             strings.TrimRight(v.GetString("BASE_URL"), "/"),
		URL:                 v.GetString("DB_URI"),
		DatabaseName:        v.GetString("DB_NAME"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTExpire:           v.GetDuration("JWT_EXPIRE"),
		JWTCookieExpire:     v.GetInt("JWT_COOKIE_EXPIRE"),
		RequestTimeout:      v.GetDuration("REQUEST_TIMEOUT"),
		FileUploadPath:      v.GetString("FILE_UPLOAD_PATH"),
		MaxFileUpload:       v.GetInt64("MAX_FILE_UPLOAD"),
		PhotoStorage:        strings.ToLower(v.GetString("PHOTO_STORAGE")),
		CloudinaryCloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: v.GetString("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    v.GetString("CLOUDINARY_FOLDER"),
		S3Bucket:            v.GetString("S3_BUCKET"),
		S3Region:            v.GetString("S3_REGION"),
		S3Endpoint:          v.GetString("S3_ENDPOINT"),
		S3AccessKey:         v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:         v.GetString("S3_SECRET_KEY"),
		GeocoderAPIKey:      v.GetString("GEOCODER_API_KEY"),
		SendGridAPIKey:      v.GetString("SENDGRID_API_KEY"),
		FromName:            v.GetString("FROM_NAME"),
		FromEmail:           v.GetString("FROM_EMAIL"),
	}

	//setup zap logger and replace default logger
	logger, err := setLogger(c.Env)
	if err != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	return c
}

// Validate reports the settings the api cannot start without
func (c *Config) Validate() error {
	var errs []error
	if c.URL == "" {
		errs = append(errs, errors.New("DB_URI must be set"))
	}
	if c.DatabaseName == "" {
		errs = append(errs, errors.New("DB_NAME must be set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.GeocoderAPIKey == "" {
		errs = append(errs, errors.New("GEOCODER_API_KEY must be set"))
	}
	switch c.PhotoStorage {
	case "disk", "cloudinary", "s3":
	default:
		errs = append(errs, errors.New("PHOTO_STORAGE must be one of disk, cloudinary, s3"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the api runs in a production deployment, which
// decides if auth cookies are marked secure.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// CookieExpiry is the lifetime of the auth cookie
func (c *Config) CookieExpiry() time.Duration {
	return time.Duration(c.JWTCookieExpire) * 24 * time.Hour
}
