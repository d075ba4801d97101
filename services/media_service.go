package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	fig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/techwatch/communitywatch/config"
)

const MaxEvidenceFileSize = 10 * 1024 * 1024 // 10 MB

const (
	feedMaxWidth   = 1080
	thumbnailWidth = 320
)

// MediaService is the evidence blob store: it takes image bytes and hands
// back a publicly resolvable URL. It knows nothing about reports.
type MediaService interface {
	UploadImage(fileHeader *multipart.FileHeader, token string) (string, error)
}

// mediaService struct
type mediaService struct {
	Config *config.Config
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(conf *config.Config) MediaService {
	return &mediaService{
		Config: conf,
	}
}

func CheckFileSize(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxEvidenceFileSize {
		return errors.New("file size exceeds the maximum allowed size")
	}
	return nil
}

func CheckSupportedFile(filename string) (bool, string) {
	supportedFileTypes := map[string]bool{
		".png":  true,
		".jpeg": true,
		".jpg":  true,
		".gif":  true,
	}

	fileExtension := filepath.Ext(filename)
	return supportedFileTypes[fileExtension], fileExtension
}

// UploadImage stores the evidence image under {token}/{timestamp}{ext} and
// returns its public URL. The token only namespaces the storage path; it is
// never attributed to the report itself.
func (m *mediaService) UploadImage(fileHeader *multipart.FileHeader, token string) (string, error) {
	if err := CheckFileSize(fileHeader); err != nil {
		return "", err
	}
	supported, ext := CheckSupportedFile(fileHeader.Filename)
	if !supported {
		return "", fmt.Errorf("unsupported file type: %s", fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open evidence file")
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, "failed to read evidence file")
	}

	client, err := m.createS3Client()
	if err != nil {
		return "", err
	}

	// Keys are timestamp-qualified, so they are write-once in practice and
	// no overwrite handling is needed.
	key := fmt.Sprintf("%s/%d%s", token, time.Now().UnixMilli(), ext)
	fileURL, err := m.uploadToS3(client, fileBytes, key)
	if err != nil {
		return "", err
	}

	// Feed and thumbnail variants are best effort; the report only ever
	// references the full-size URL.
	m.uploadVariants(client, fileBytes, token)

	return fileURL, nil
}

func (m *mediaService) uploadVariants(client *s3.Client, fileBytes []byte, token string) {
	img, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		log.Printf("skipping image variants, decode failed: %v", err)
		return
	}

	variants := map[string]image.Image{
		"feed":      resize.Thumbnail(feedMaxWidth, feedMaxWidth, img, resize.Lanczos3),
		"thumbnail": imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos),
	}

	ts := time.Now().UnixMilli()
	for suffix, variant := range variants {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, variant, nil); err != nil {
			log.Printf("failed to encode %s variant: %v", suffix, err)
			continue
		}
		key := fmt.Sprintf("%s/%d_%s.jpg", token, ts, suffix)
		if _, err := m.uploadToS3(client, buf.Bytes(), key); err != nil {
			log.Printf("failed to upload %s variant: %v", suffix, err)
		}
	}
}

func (m *mediaService) createS3Client() (*s3.Client, error) {
	cfg, err := fig.LoadDefaultConfig(context.Background(),
		fig.WithRegion(m.Config.AwsRegion),
		fig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			m.Config.AwsAccessKeyID,
			m.Config.AwsSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	return s3.NewFromConfig(cfg), nil
}

func (m *mediaService) uploadToS3(client *s3.Client, content []byte, key string) (string, error) {
	_, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(m.Config.AwsBucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload file to S3")
	}

	fileURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Config.AwsBucket, m.Config.AwsRegion, key)
	return fileURL, nil
}
