package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/filex"
	"github.com/dmitrijs2005/kouden/internal/netx"
)

// MaxPhotoSize caps offering photo uploads.
const MaxPhotoSize = 10 << 20

// PhotoService attaches photos to offerings through presigned URLs. The
// bytes never pass through the API server.
type PhotoService interface {
	Upload(ctx context.Context, offeringID, path string) (string, error)
	URL(ctx context.Context, offeringID string) (string, error)
}

type photoService struct {
	client     client.Client
	httpClient *http.Client
}

func NewPhotoService(client client.Client, httpClient *http.Client) PhotoService {
	return &photoService{client: client, httpClient: httpClient}
}

// Upload reads the file at path, requests an upload URL for its detected
// content type and PUTs the bytes there. It returns the object key the
// server recorded on the offering.
func (s *photoService) Upload(ctx context.Context, offeringID, path string) (string, error) {
	data, err := filex.ReadLimited(path, MaxPhotoSize)
	if err != nil {
		return "", err
	}
	contentType := netx.DetectContentType(data)

	url, key, err := s.client.GetPhotoUploadURL(ctx, offeringID, contentType)
	if err != nil {
		return "", fmt.Errorf("get upload url: %w", err)
	}
	if err := netx.UploadToPresignedURL(ctx, s.httpClient, url, contentType, data); err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}
	return key, nil
}

// URL returns a short-lived download link for the offering's photo.
func (s *photoService) URL(ctx context.Context, offeringID string) (string, error) {
	return s.client.GetPhotoURL(ctx, offeringID)
}
