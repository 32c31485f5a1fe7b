package main

import (
	"fmt"
	"os"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/util"

	"github.com/pkg/errors"
)

func runGenerate(text, output, label string, withLogo bool) error {
	cfg := loadConfig()

	codec, composer, err := newCodec(cfg)
	if err != nil {
		return err
	}

	req := entity.EncodeRequest{Text: text}
	if withLogo {
		if label == "" {
			label = cfg.QRCode.BrandLabel
		}
		req.Logo = composer.RenderLabel(label)
	}

	qrImage, err := codec.Encode(req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, qrImage.PNG, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", output)
	}

	fmt.Printf("Wrote %s (%dx%d, %s)\n", output, qrImage.Width, qrImage.Height, util.FormatBytes(int64(len(qrImage.PNG))))

	return nil
}
