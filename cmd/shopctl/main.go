package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: Create or update the shop schema
// - seed:    Insert the sample catalog
// - token:   Mint a development access token

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	seedInvalidate := seedCmd.Bool("invalidate", true, "Drop cached catalog entries after seeding")

	tokenUser := tokenCmd.String("user", "", "User ID placed in the token subject (random when empty)")
	tokenTTL := tokenCmd.Duration("ttl", 0, "Token lifetime (defaults to secretKey.accessTtl)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := shopctlFlags{
		Migrate: migrateFlags{
			cmd: migrateCmd,
		},
		Seed: seedFlags{
			cmd:        seedCmd,
			invalidate: seedInvalidate,
		},
		Token: tokenFlags{
			cmd:  tokenCmd,
			user: tokenUser,
			ttl:  tokenTTL,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type shopctlFlags struct {
	Migrate migrateFlags
	Seed    seedFlags
	Token   tokenFlags
}

type migrateFlags struct {
	cmd *flag.FlagSet
}

type seedFlags struct {
	cmd        *flag.FlagSet
	invalidate *bool
}

type tokenFlags struct {
	cmd  *flag.FlagSet
	user *string
	ttl  *time.Duration
}

func runSubcommand(ctx context.Context, flags *shopctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "seed":
		return handleSeed(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(ctx context.Context, flags *shopctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return runMigrate(ctx)
}

func handleSeed(ctx context.Context, flags *shopctlFlags) error {
	if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}

	return runSeed(ctx, *flags.Seed.invalidate)
}

func handleToken(flags *shopctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	return runToken(*flags.Token.user, *flags.Token.ttl)
}

func printUsage() {
	fmt.Println("Usage: shopctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate     Create or update the shop schema")
	fmt.Println("  seed        Insert the sample catalog")
	fmt.Println("  token       Mint a development access token")
	fmt.Println("")
	fmt.Println("Use 'shopctl <command> -h' for more information about a command.")
}
