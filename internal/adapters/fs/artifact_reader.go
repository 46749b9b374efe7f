package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// ArtifactReader reads compiled contract artifacts from disk
type ArtifactReader struct{}

// NewArtifactReader creates a new ArtifactReader
func NewArtifactReader() *ArtifactReader {
	return &ArtifactReader{}
}

// ReadArtifact returns the raw bytes of the artifact at path
func (a *ArtifactReader) ReadArtifact(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found at %s (build the contract first)", path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("artifact path %s is a directory", path)
	}

	return os.ReadFile(path)
}

var _ usecase.ArtifactReader = (*ArtifactReader)(nil)
