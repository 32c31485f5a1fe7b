package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

func runSave(ctx context.Context, text, bucket string) error {
	cfg := loadConfig()
	cfg.Library.BucketURL = bucket

	s, err := newStudio(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer s.close()

	outcome, err := s.qrcodeUC.SubmitGenerate(ctx, text).Wait(ctx)
	if err != nil {
		return err
	}
	if !outcome.IsSuccess() {
		return errors.New(outcome.Message)
	}

	fmt.Println(outcome.Message)
	fmt.Printf("Asset: %s\n", outcome.AssetID)

	return nil
}
