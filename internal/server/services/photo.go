package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/models"
	sc "github.com/dmitrijs2005/kouden/internal/server/config"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/repomanager"
)

// PresignExpiry bounds how long a photo URL stays usable.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// PhotoService hands out presigned S3 URLs for offering photos.
type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	publisher   Publisher
	now         func() time.Time
}

func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config, pub Publisher) *PhotoService {
	if pub == nil {
		pub = nopPublisher{}
	}
	return &PhotoService{db: db, repomanager: m, config: cfg, publisher: pub, now: time.Now}
}

// photoStorageKey groups objects by ledger and upload day.
func photoStorageKey(ledgerID string, d time.Time) string {
	return fmt.Sprintf("ledgers/%s/%d/%02d/%02d/%v", ledgerID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *PhotoService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// UploadURL presigns a PUT for a new photo of the offering and records the
// object key on the row. The updated row is published like any other edit.
func (s *PhotoService) UploadURL(ctx context.Context, userID, offeringID, contentType string) (url, key string, err error) {
	if err := checkIDs(offeringID); err != nil {
		return "", "", err
	}
	repo := s.repomanager.Offerings(s.db)

	offering, err := repo.Get(ctx, offeringID)
	if err != nil {
		return "", "", err
	}
	if _, err := authorize(ctx, s.repomanager, s.db, offering.LedgerID, userID, true); err != nil {
		return "", "", err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key = photoStorageKey(offering.LedgerID, s.now())
	in := &s3.PutObjectInput{Bucket: &bucket, Key: &key}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", "", err
	}

	saved, err := repo.SetPhotoKey(ctx, offeringID, &key)
	if err != nil {
		return "", "", fmt.Errorf("error saving photo key: %w", err)
	}
	if b, err := json.Marshal(saved); err == nil {
		s.publisher.Publish(common.ChannelKey(models.TableOfferings, saved.LedgerID), models.Event{
			Type: models.EventUpdate, Table: models.TableOfferings, New: b, Old: &models.OldRef{ID: saved.ID},
		})
	}

	return req.URL, key, nil
}

// DownloadURL presigns a GET for the offering's photo. Offerings without a
// photo yield common.ErrorNotFound.
func (s *PhotoService) DownloadURL(ctx context.Context, userID, offeringID string) (string, error) {
	if err := checkIDs(offeringID); err != nil {
		return "", err
	}
	offering, err := s.repomanager.Offerings(s.db).Get(ctx, offeringID)
	if err != nil {
		return "", err
	}
	if _, err := authorize(ctx, s.repomanager, s.db, offering.LedgerID, userID, false); err != nil {
		return "", err
	}
	if offering.PhotoKey == nil {
		return "", fmt.Errorf("%w: offering has no photo", common.ErrorNotFound)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    offering.PhotoKey,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
