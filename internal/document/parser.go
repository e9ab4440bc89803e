// Package document extracts plain text from resume PDFs and job description
// files, serving previously extracted text from the document cache whenever
// the source file is unchanged.
package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/yksoni-monk/JobApplicationAI/internal/cache"

	"go.uber.org/zap"
)

// Parser extracts document text, consulting the cache before doing any work
// and storing freshly extracted text for the next run.
type Parser struct {
	cache  *cache.Cache
	logger *zap.Logger
}

func NewParser(c *cache.Cache, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{cache: c, logger: logger}
}

// ResumeText returns the plain text of the resume PDF at path.
func (p *Parser) ResumeText(path string) (string, error) {
	if text, ok, err := p.lookup(cache.KindResume, path); err != nil {
		return "", err
	} else if ok {
		return text, nil
	}

	p.logger.Info("extracting resume text", zap.String("path", path))

	text, err := extractPDF(path)
	if err != nil {
		return "", fmt.Errorf("parsing resume %q: %w", path, err)
	}

	p.store(cache.KindResume, path, text)
	return text, nil
}

// JobText returns the contents of the job description file at path.
func (p *Parser) JobText(path string) (string, error) {
	if text, ok, err := p.lookup(cache.KindJob, path); err != nil {
		return "", err
	} else if ok {
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading job description %q: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("job description %q is empty", path)
	}

	p.store(cache.KindJob, path, text)
	return text, nil
}

func (p *Parser) lookup(kind cache.Kind, path string) (string, bool, error) {
	if p.cache == nil {
		return "", false, nil
	}
	return p.cache.Lookup(kind, path)
}

func (p *Parser) store(kind cache.Kind, path, text string) {
	if p.cache == nil {
		return
	}
	// A store failure costs a re-parse on the next run, not this one.
	if err := p.cache.Store(kind, path, text); err != nil {
		p.logger.Warn("caching extracted text failed",
			zap.String("kind", string(kind)),
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
