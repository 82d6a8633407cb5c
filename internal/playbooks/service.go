package playbooks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"playbook-backend/internal/extract"
	"playbook-backend/internal/render"
	"playbook-backend/internal/reports"
	"playbook-backend/internal/shared/metrics"
	"playbook-backend/internal/shared/storage/object"
	"playbook-backend/internal/shared/telemetry"
	"playbook-backend/internal/shared/util"
)

// Service parses report uploads and produces archived playbooks.
type Service struct {
	Store     object.ObjectStore
	Reference *render.Reference
	Now       func() time.Time
	NewID     func() string
}

// Generate parses both reports concurrently, renders the playbook, merges it
// with the reference document and archives the result.
func (s *Service) Generate(ctx context.Context, req Request) (Playbook, error) {
	req, err := prepare(req)
	if err != nil {
		return Playbook{}, err
	}

	start := s.now()
	metrics.IncPlaybookStarted()
	pb, err := s.generate(ctx, req)
	metrics.ObservePlaybookDurationMs(float64(s.now().Sub(start).Milliseconds()))
	if err != nil {
		metrics.IncPlaybookFailed()
		telemetry.Warn("playbook.failed", map[string]any{
			"company": req.CompanyName,
			"error":   err,
		})
		return Playbook{}, err
	}
	metrics.IncPlaybookGenerated()
	telemetry.Info("playbook.generated", map[string]any{
		"playbook_id":      pb.ID,
		"company":          req.CompanyName,
		"bytes":            len(pb.Document),
		"readiness_sha256": util.HashBytes(req.Readiness.Data),
		"toolbox_sha256":   util.HashBytes(req.Toolbox.Data),
		"duration_ms":      s.now().Sub(start).Milliseconds(),
	})
	return pb, nil
}

// Render produces the playbook document without archiving it.
func (s *Service) Render(ctx context.Context, req Request) ([]byte, error) {
	req, err := prepare(req)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, req)
}

func prepare(req Request) (Request, error) {
	if len(req.Readiness.Data) == 0 {
		return req, eris.Wrap(ErrInvalidInput, "readiness_file is required")
	}
	if len(req.Toolbox.Data) == 0 {
		return req, eris.Wrap(ErrInvalidInput, "toolbox_file is required")
	}
	req.applyDefaults()
	return req, nil
}

func (s *Service) generate(ctx context.Context, req Request) (Playbook, error) {
	data, err := s.render(ctx, req)
	if err != nil {
		return Playbook{}, err
	}

	id := s.newID()
	key := storageKey(id)
	if _, err := s.Store.SaveWithKey(ctx, key, docxContentType, bytes.NewReader(data)); err != nil {
		return Playbook{}, eris.Wrapf(err, "playbooks: archive %s", id)
	}

	return Playbook{
		ID:         id,
		FileName:   util.DownloadName(req.CompanyName),
		StorageKey: key,
		Document:   data,
	}, nil
}

func (s *Service) render(ctx context.Context, req Request) ([]byte, error) {
	var (
		readiness reports.ReadinessRecord
		toolbox   reports.ToolboxRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := extractText(gctx, "readiness_file", req.Readiness)
		if err != nil {
			return err
		}
		readiness = reports.ParseReadiness(text)
		return nil
	})
	g.Go(func() error {
		text, err := extractText(gctx, "toolbox_file", req.Toolbox)
		if err != nil {
			return err
		}
		toolbox = reports.ParseToolbox(text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	metrics.IncReportsParsed(2)

	doc := render.Playbook(render.Input{
		CompanyName: req.CompanyName,
		Profile:     req.Profile,
		Readiness:   readiness,
		Toolbox:     toolbox,
		GeneratedAt: s.now(),
	})
	data, err := render.Compose(ctx, doc, s.Reference)
	if err != nil {
		return nil, eris.Wrap(err, "playbooks: compose")
	}
	return data, nil
}

// Get returns an archived playbook document.
func (s *Service) Get(ctx context.Context, id string) ([]byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, eris.Wrapf(ErrInvalidInput, "playbook id %q", id)
	}
	rc, err := s.Store.Open(ctx, storageKey(id))
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return nil, eris.Wrapf(ErrNotFound, "playbook %s", id)
		}
		return nil, eris.Wrapf(err, "playbooks: open %s", id)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, eris.Wrapf(err, "playbooks: read %s", id)
	}
	return data, nil
}

// ParseReport extracts the text of one upload and parses it as kind.
func (s *Service) ParseReport(ctx context.Context, upload Upload, kind reports.Kind) (reports.Record, error) {
	text, err := extractText(ctx, "file", upload)
	if err != nil {
		return nil, err
	}
	record, err := reports.Parse(text, kind)
	if err != nil {
		return nil, err
	}
	metrics.IncReportsParsed(1)
	return record, nil
}

func extractText(ctx context.Context, field string, upload Upload) (string, error) {
	text, err := extract.TextFromBytes(ctx, upload.Data, upload.ContentType, upload.FileName)
	if err != nil {
		return "", eris.Wrapf(err, "%s %s", field, upload.FileName)
	}
	return text, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
