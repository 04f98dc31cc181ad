package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

const uploadTimeout = 30 * time.Second

// publishConfig is read from the environment (optionally via a .env
// file in the working directory)
type publishConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
}

// Publish uploads a rendered image file to the configured S3 bucket
func Publish(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing image file argument")
	}
	return uploadFile(ctx.Args().First())
}

func uploadFile(name string) error {
	cfg, err := loadPublishConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("creating S3 session: %w", err)
	}

	uploadCtx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	key := path.Join(cfg.Prefix, path.Base(name))
	_, err = s3.New(sess).PutObjectWithContext(uploadCtx, &s3.PutObjectInput{
		Bucket:        aws.String(cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}

	logger.Noticef("uploaded %s to bucket %s (%d bytes)", key, cfg.Bucket, len(data))
	return nil
}

func loadPublishConfig() (*publishConfig, error) {
	_ = godotenv.Load()

	cfg := &publishConfig{
		AccessKey: os.Getenv("PRISM_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("PRISM_S3_SECRET_KEY"),
		Endpoint:  os.Getenv("PRISM_S3_ENDPOINT"),
		Region:    os.Getenv("PRISM_S3_REGION"),
		Bucket:    os.Getenv("PRISM_S3_BUCKET"),
		Prefix:    os.Getenv("PRISM_S3_PREFIX"),
	}
	if cfg.Bucket == "" {
		return nil, errors.New("PRISM_S3_BUCKET is not set")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	return cfg, nil
}
