package main

import (
	"context"
	"fmt"

	"qrstudio/internal/infra/capture"
	"qrstudio/internal/usecase"

	"github.com/pkg/errors"
)

func runDecode(ctx context.Context, input string) error {
	cfg := loadConfig()
	cfg.Library.BucketURL = "mem://"

	s, err := newStudio(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer s.close()

	var sub *usecase.Submission
	capture.NewFilePicker(input, s.logger).Present(ctx, func(data []byte) {
		sub = s.qrcodeUC.SelectImage(ctx, data)
	})

	if _, err := sub.Wait(ctx); err != nil {
		return err
	}

	state := s.qrcodeUC.State()
	if state.DecodedContent == nil {
		if state.ErrorMessage != nil {
			return errors.New(*state.ErrorMessage)
		}

		return errors.New("no QR code content")
	}

	fmt.Println(*state.DecodedContent)

	return nil
}
