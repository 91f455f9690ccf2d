package main

import (
	"fmt"
	"time"

	"vitashop/config"
	"vitashop/internal/infra/auth"
	"vitashop/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runToken(user string, ttl time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	userID := uuid.New()
	if user != "" {
		if userID, err = uuid.Parse(user); err != nil {
			return errors.Wrapf(err, "invalid --user %q", user)
		}
	}

	if ttl > 0 {
		cfg.SecretKey.AccessTTL = ttl
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateAccessToken(userID)
	if err != nil {
		return err
	}

	fmt.Printf("User:    %s\n", userID)
	fmt.Printf("Expires: in %s\n", util.FormatDuration(cfg.SecretKey.AccessTTL))
	fmt.Println()
	fmt.Println(token)

	return nil
}
