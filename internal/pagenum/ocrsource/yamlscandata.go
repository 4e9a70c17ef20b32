package ocrsource

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"
)

// YAMLScandata is a ScandataSource backed by a YAML document of the same
// shape as JSONScandata: {"skip_leaves": [...]}.
type YAMLScandata struct {
	SkipLeavesList []int `yaml:"skip_leaves"`
}

// NewYAMLScandata decodes r into a YAMLScandata.
func NewYAMLScandata(r io.Reader) (*YAMLScandata, error) {
	var s YAMLScandata
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("ocrsource: decoding yaml scandata: %w: %v", pnerrors.ErrExternalIO, err)
	}
	return &s, nil
}

func (s *YAMLScandata) SkipLeaves(ctx context.Context) (map[int]bool, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	out := make(map[int]bool, len(s.SkipLeavesList))
	for _, leaf := range s.SkipLeavesList {
		out[leaf] = true
	}
	return out, nil
}
