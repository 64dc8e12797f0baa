/*
Command tokencheck mints a room token with the configured secret and prints it together with
its slug and decoded claims. It is meant for checking a deployment's JITSI_* settings by hand.

Usage:

	tokencheck -room "Unto Us A Son Is Given" [-moderator] [-name Ruth] [-email ruth@example.org] [-avatar URL]
*/
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"biblenow/internal/app/room"
	"biblenow/internal/configs"
	"biblenow/internal/pkg/auth/jwt"
)

func main() {
	// Load .env file from project root (ignore error if not found)
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], cfg, time.Now(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, cfg *configs.AppConfig, now time.Time, out io.Writer) error {
	fs := flag.NewFlagSet("tokencheck", flag.ContinueOnError)
	fs.SetOutput(out)

	roomTitle := fs.String("room", "", "room title to issue the token for (required)")
	moderator := fs.Bool("moderator", false, "issue a moderator token")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	avatar := fs.String("avatar", "", "avatar URL")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *roomTitle == "" {
		return errors.New("-room is required")
	}

	slug := room.Normalize(*roomTitle)
	if slug == "" {
		return fmt.Errorf("room title %q has no letters or digits", *roomTitle)
	}

	if cfg.JitsiAppSecret == "" {
		return errors.New("JITSI_APP_SECRET must be set (in .env or environment)")
	}

	claims := jwt.BuildRoomClaims(slug, jwt.Viewer{
		DisplayName: *name,
		Email:       *email,
		Avatar:      *avatar,
		Moderator:   *moderator,
	}, now, cfg.TokenIssuer())

	token, err := jwt.SignRoomToken(claims, cfg.JitsiAppSecret)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}

	decoded, err := jwt.DecodeRoomToken(token, cfg.JitsiAppSecret)
	if err != nil {
		return fmt.Errorf("token did not verify with the configured secret: %w", err)
	}

	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "room:   %s\n", slug)
	fmt.Fprintf(out, "valid:  %s .. %s\n",
		time.Unix(decoded.NotBefore, 0).UTC().Format(time.RFC3339),
		time.Unix(decoded.ExpiresAt, 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "token:  %s\n", token)
	fmt.Fprintf(out, "claims:\n%s\n", pretty)
	return nil
}
