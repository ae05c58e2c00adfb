package common

import (
	"github.com/eventflow-app/eventflow-api/type/shared"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

var Config *shared.Config
var Gorm *gorm.DB
var Mongo *mongo.Database
var Dialer *gomail.Dialer
var MinIOClient *minio.Client
