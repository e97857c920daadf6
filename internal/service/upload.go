package service

import (
	"io"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/arahhq/hr-office/internal/conf"
)

// UploadService stores letter-template assets (background images, reference
// PDFs) in the public directory they are served from.
type UploadService struct {
	publicDir      string
	maxUploadBytes int64
	log            *log.Helper
}

// NewUploadService creates a new upload service.
func NewUploadService(docs *conf.Documents, logger log.Logger) *UploadService {
	publicDir := "public"
	var maxUpload int64
	if docs != nil {
		if docs.PublicDir != "" {
			publicDir = docs.PublicDir
		}
		maxUpload = docs.MaxUploadBytes
	}
	return &UploadService{
		publicDir:      publicDir,
		maxUploadBytes: maxUpload,
		log:            log.NewHelper(logger),
	}
}

// AssetReply reports where an uploaded asset was stored.
type AssetReply struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Status   string `json:"status"`
}

// TemplateImage handles POST /assets/template-image. Content is sniffed, not
// trusted from the filename.
func (s *UploadService) TemplateImage(ctx http.Context) error {
	name, data, err := s.readUpload(ctx)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return errors.BadRequest("INVALID_ASSET", "file must be an image (JPG/PNG)")
	}

	return s.store(ctx, name, data)
}

// TemplatePDF handles POST /assets/template-pdf.
func (s *UploadService) TemplatePDF(ctx http.Context) error {
	name, data, err := s.readUpload(ctx)
	if err != nil {
		return err
	}

	if !mimetype.Detect(data).Is("application/pdf") {
		return errors.BadRequest("INVALID_ASSET", "file must be a PDF")
	}

	return s.store(ctx, name, data)
}

func (s *UploadService) readUpload(ctx http.Context) (string, []byte, error) {
	req := ctx.Request()
	if s.maxUploadBytes > 0 {
		req.Body = nethttp.MaxBytesReader(ctx.Response(), req.Body, s.maxUploadBytes)
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		return "", nil, errors.BadRequest("INVALID_UPLOAD", "missing file field").WithCause(err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, errors.BadRequest("INVALID_UPLOAD", "unreadable upload").WithCause(err)
	}

	// Strip any path components and spaces so the name is URL-safe.
	name := strings.ReplaceAll(filepath.Base(header.Filename), " ", "_")
	return name, data, nil
}

func (s *UploadService) store(ctx http.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.publicDir, 0o755); err != nil {
		return errors.InternalServer("ASSET_STORE", "public directory unavailable").WithCause(err)
	}
	if err := os.WriteFile(filepath.Join(s.publicDir, name), data, 0o644); err != nil {
		return errors.InternalServer("ASSET_STORE", "failed to store asset").WithCause(err)
	}

	s.log.Infof("stored template asset %s (%d bytes)", name, len(data))
	return ctx.Result(nethttp.StatusOK, &AssetReply{
		Filename: name,
		URL:      "/public/" + name,
		Status:   "success",
	})
}
