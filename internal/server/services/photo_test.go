package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/models"
	sc "github.com/dmitrijs2005/kouden/internal/server/config"
)

func newPhotoService(t *testing.T) (*PhotoService, *fakeRepoManager, *recordingPublisher) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "offerings",
	}
	rm := newFakeRepoManager()
	_ = rm.ledgers.AddMember(context.Background(), testLedger, "owner", models.RoleOwner)
	_ = rm.ledgers.AddMember(context.Background(), testLedger, "viewer", models.RoleViewer)
	rm.offerings.rows[testOffering] = models.Offering{Meta: models.Meta{ID: testOffering, LedgerID: testLedger}, OfferingType: "flowers"}
	pub := &recordingPublisher{}
	s := NewPhotoService(db, rm, cfg, pub)
	s.now = func() time.Time { return t0 }
	return s, rm, pub
}

// stubPresign replaces the AWS seams for the duration of the test.
func stubPresign(t *testing.T) (puts, gets *[]string) {
	t.Helper()
	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient = origLoad, origNewS3, origNewPre
		presignPutObject, presignGetObject = origPut, origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	puts, gets = &[]string{}, &[]string{}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		*puts = append(*puts, *in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://s3/put/" + *in.Key, Method: "PUT"}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		*gets = append(*gets, *in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://s3/get/" + *in.Key, Method: "GET"}, nil
	}
	return puts, gets
}

func Test_getPresignClient(t *testing.T) {
	s, _, _ := newPhotoService(t)

	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient = origLoad, origNewS3, origNewPre
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	pc, err := s.getPresignClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = s.getPresignClient(context.Background())
	assert.EqualError(t, err, "load-fail")
}

func TestPhotoService_UploadURL(t *testing.T) {
	s, rm, pub := newPhotoService(t)
	puts, _ := stubPresign(t)

	url, key, err := s.UploadURL(context.Background(), "owner", testOffering, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "ledgers/"+testLedger+"/2026/03/10/"), key)
	assert.Equal(t, "http://s3/put/"+key, url)
	assert.Equal(t, []string{key}, *puts)

	require.NotNil(t, rm.offerings.rows[testOffering].PhotoKey)
	assert.Equal(t, key, *rm.offerings.rows[testOffering].PhotoKey)

	events := pub.all()
	require.Len(t, events, 1)
	assert.Equal(t, "offerings:"+testLedger, events[0].channel)
	assert.Equal(t, models.EventUpdate, events[0].event.Type)
}

func TestPhotoService_UploadURL_Rejections(t *testing.T) {
	s, _, _ := newPhotoService(t)
	stubPresign(t)

	_, _, err := s.UploadURL(context.Background(), "viewer", testOffering, "")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, _, err = s.UploadURL(context.Background(), "owner", testMissing, "")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, _, err = s.UploadURL(context.Background(), "owner", "o1", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestPhotoService_DownloadURL(t *testing.T) {
	s, rm, _ := newPhotoService(t)
	_, gets := stubPresign(t)

	_, err := s.DownloadURL(context.Background(), "viewer", testOffering)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	key := "ledgers/" + testLedger + "/2026/03/10/x"
	o := rm.offerings.rows[testOffering]
	o.PhotoKey = &key
	rm.offerings.rows[testOffering] = o

	url, err := s.DownloadURL(context.Background(), "viewer", testOffering)
	require.NoError(t, err)
	assert.Equal(t, "http://s3/get/"+key, url)
	assert.Equal(t, []string{key}, *gets)

	_, err = s.DownloadURL(context.Background(), "stranger", testOffering)
	assert.ErrorIs(t, err, common.ErrorForbidden)
}
