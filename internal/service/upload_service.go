package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Writes in flight per batch.
const uploadConcurrency = 4

type UploadConfig struct {
	MaxFiles         int
	MaxDownloadBytes int64
	DownloadTimeout  time.Duration

	// AllowPrivateNetworks lets upload-by-link reach loopback, private and
	// link-local addresses. Only local development and tests set it.
	AllowPrivateNetworks bool
}

// ErrPrivateAddress is returned when a download would connect to a
// non-public address.
var ErrPrivateAddress = errors.New("refusing to connect to a non-public address")

// UploadFile is one file of a batch upload.
type UploadFile struct {
	OriginalName string
	Content      io.Reader
}

// UploadService stores listing photos in a blob store under generated names.
type UploadService struct {
	store  storage.BlobStore
	client *http.Client
	cfg    UploadConfig
}

// NewUploadService uses client for downloads when given; otherwise it builds
// one that honors cfg.AllowPrivateNetworks.
func NewUploadService(store storage.BlobStore, client *http.Client, cfg UploadConfig) *UploadService {
	if client == nil {
		client = newDownloadClient(cfg)
	}
	return &UploadService{store: store, client: client, cfg: cfg}
}

func newDownloadClient(cfg UploadConfig) *http.Client {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	if !cfg.AllowPrivateNetworks {
		dialer.Control = refuseNonPublic
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	// A proxy would be the address checked instead of the target.
	transport.Proxy = nil

	return &http.Client{Timeout: cfg.DownloadTimeout, Transport: transport}
}

// refuseNonPublic runs after DNS resolution, so it sees the address actually
// dialed, redirects included.
func refuseNonPublic(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPrivateAddress, address)
	}
	ip = ip.Unmap()
	if !ip.IsGlobalUnicast() || ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return fmt.Errorf("%w: %s", ErrPrivateAddress, address)
	}
	return nil
}

// StoreBatch writes every file and returns their references in input order.
// The batch is all-or-nothing: when any write fails, files already written
// are removed and ErrStorage is returned.
func (s *UploadService) StoreBatch(ctx context.Context, files []UploadFile) ([]string, error) {
	if s.cfg.MaxFiles > 0 && len(files) > s.cfg.MaxFiles {
		return nil, fmt.Errorf("%w: got %d, limit is %d", domain.ErrTooManyFiles, len(files), s.cfg.MaxFiles)
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = generateName(extensionOf(f.OriginalName))
	}

	written := make([]bool, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, f := range files {
		g.Go(func() error {
			if err := s.store.Put(gctx, names[i], f.Content, storage.ContentTypeFor(names[i])); err != nil {
				return fmt.Errorf("store %q: %w", f.OriginalName, err)
			}
			written[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.rollback(names, written)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	return names, nil
}

func (s *UploadService) rollback(names []string, written []bool) {
	// The request context may already be canceled; cleanup must still run.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for i, ok := range written {
		if !ok {
			continue
		}
		if err := s.store.Delete(ctx, names[i]); err != nil {
			log.Error().Err(err).Str("name", names[i]).Msg("failed to remove upload after batch failure")
		}
	}
}

// StoreFromURL downloads an image and stores it under a generated name.
func (s *UploadService) StoreFromURL(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: unsupported url %q", domain.ErrDownload, rawURL)
	}

	if s.cfg.DownloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.DownloadTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: remote returned %d", domain.ErrDownload, resp.StatusCode)
	}

	body := bufio.NewReaderSize(resp.Body, 512)
	contentType := imageContentType(resp.Header.Get("Content-Type"), body)
	if contentType == "" {
		return "", fmt.Errorf("%w: content is not an image", domain.ErrDownload)
	}

	ext := extensionForContentType(contentType)
	if ext == "" {
		ext = extensionOf(path.Base(u.Path))
	}
	if ext == "" {
		ext = "jpg"
	}
	name := generateName(ext)

	limited := &limitedReader{r: body, remaining: s.cfg.MaxDownloadBytes}
	if err := s.store.Put(ctx, name, limited, contentType); err != nil {
		if errors.Is(err, errTooLarge) {
			return "", fmt.Errorf("%w: image exceeds %d bytes", domain.ErrDownload, s.cfg.MaxDownloadBytes)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}

	return name, nil
}

// imageContentType returns the image media type from the header, falling
// back to sniffing the first bytes. It returns "" for non-images.
func imageContentType(header string, body *bufio.Reader) string {
	if mediaType, _, err := mime.ParseMediaType(header); err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType
	}
	head, _ := body.Peek(512)
	sniffed := http.DetectContentType(head)
	if mediaType, _, err := mime.ParseMediaType(sniffed); err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType
	}
	return ""
}

var contentTypeExtensions = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/avif":    "avif",
	"image/bmp":     "bmp",
	"image/svg+xml": "svg",
}

func extensionForContentType(contentType string) string {
	return contentTypeExtensions[contentType]
}

// extensionOf returns the lower-cased extension of name without the dot,
// or "" when there is none or it holds anything but letters and digits.
func extensionOf(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ext == "" {
		return ""
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

func generateName(ext string) string {
	base := uuid.NewString()
	if ext == "" {
		return base
	}
	return base + "." + ext
}

var errTooLarge = errors.New("object too large")

// limitedReader fails instead of truncating once more than remaining bytes
// have been read. A non-positive limit disables the check.
type limitedReader struct {
	r         io.Reader
	remaining int64
	read      int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.remaining > 0 && l.read > l.remaining {
		return n, errTooLarge
	}
	return n, err
}
