package shared

type Config struct {
	Environment    *bool     `yaml:"environment" validate:"required"`
	Port           *string   `yaml:"port" validate:"required"`
	BackendURL     *string   `yaml:"backend_url" validate:"required"`
	Cors           []*string `yaml:"cors" validate:"required"`
	JWTSecret      *string   `yaml:"jwt_secret" validate:"required"`
	Postgres       *string   `yaml:"postgres" validate:"required"`
	Mongo          *string   `yaml:"mongo" validate:"required"`
	MongoDatabase  *string   `yaml:"mongo_database" validate:"required"`
	MinIoEndpoint  *string   `yaml:"minio_endpoint" validate:"required"`
	MinIoAccessKey *string   `yaml:"minio_access_key" validate:"required"`
	MinIoSecretKey *string   `yaml:"minio_secret_key" validate:"required"`
	BucketAsset    *string   `yaml:"bucket_asset" validate:"required"`
	BucketArchive  *string   `yaml:"bucket_archive" validate:"required"`
	CheckinHost    *string   `yaml:"checkin_host" validate:"required"`
	MailHost       *string   `yaml:"mail_host" validate:"required"`
	MailUser       *string   `yaml:"mail_user" validate:"required"`
	MailPass       *string   `yaml:"mail_pass" validate:"required"`
	FontDir        *string   `yaml:"font_dir"`
}
