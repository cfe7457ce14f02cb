package translate

import (
	"fmt"

	"github.com/vk/nodock/internal/config"
	"github.com/vk/nodock/internal/jobspec"
)

const (
	volumeType           = "csi"
	volumeAttachmentMode = "filesystem"
)

// accessModes maps descriptor short codes to CSI access modes.
var accessModes = map[string]string{
	"mnmw": "multi-node-multi-writer",
	"mnsw": "multi-node-single-writer",
}

// AccessMode normalizes a descriptor access mode code. It returns
// ErrUnknownAccessMode for any code outside the supported set.
func AccessMode(code string) (string, error) {
	mode, ok := accessModes[code]
	if !ok {
		return "", ErrUnknownAccessMode
	}
	return mode, nil
}

func volumeBlock(vol config.Volume) (*jobspec.Block, error) {
	mode, err := AccessMode(vol.AccessMode)
	if err != nil {
		return nil, &TranslationError{
			Block: fmt.Sprintf("volume %q", vol.Name),
			Field: "access mode",
			Value: vol.AccessMode,
			Err:   err,
		}
	}

	return &jobspec.Block{
		Type:   "volume",
		Labels: []string{vol.Name},
		Attributes: []jobspec.Attribute{
			jobspec.String("type", volumeType),
			jobspec.String("source", vol.Name),
			jobspec.String("access_mode", mode),
			jobspec.Bool("read_only", vol.ReadOnly),
			jobspec.String("attachment_mode", volumeAttachmentMode),
		},
	}, nil
}
