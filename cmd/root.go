package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/surge-downloader/punch/internal/alloc"
	"github.com/surge-downloader/punch/internal/config"
	"github.com/surge-downloader/punch/internal/fsutil"
	"github.com/surge-downloader/punch/internal/utils"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type options struct {
	noSyscall bool
	strict    bool
	lock      bool
	verbose   bool
	mode      modeValue
	chunkSize sizeValue
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{chunkSize: alloc.DefaultChunkSize}

	cmd := &cobra.Command{
		Use:   "punch <file> <size>",
		Short: "Create a file of a given size",
		Long: `Create a file of a given size, e.g. 1G, 1GB or 1GiB.

The file is sized with fallocate(2) on Linux, posix_fallocate(2) on FreeBSD
and ftruncate(2) on other Unix systems. If that fails, or --no-syscall is
given, zeros are written instead.`,
		Example: `  punch disk.img 10MiB
  punch disk.img 10MiB --no-syscall
  punch key.bin 1500000B --permissions 0600`,
		Args:          cobra.ExactArgs(2),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPunch(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.noSyscall, "no-syscall", "S", false, "do not use fallocate(2), posix_fallocate(2) or ftruncate(2); write zeros instead")
	flags.Var(&opts.mode, "permissions", "set file permissions regardless of the umask (e.g. 0600)")
	flags.BoolVar(&opts.strict, "strict", false, "fail if the preallocation syscall fails instead of writing zeros")
	flags.BoolVar(&opts.lock, "lock", false, "hold an advisory lock on the file while sizing it")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.Var(&opts.chunkSize, "chunk-size", "size of each write when writing zeros (at most 64MiB)")

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func runPunch(cmd *cobra.Command, args []string, opts *options) error {
	if err := alloc.CheckPlatform(); err != nil {
		return err
	}

	utils.SetWarnOutput(cmd.ErrOrStderr())
	defer utils.SetWarnOutput(nil)

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := opts.applySettings(cmd.Flags(), settings); err != nil {
		return err
	}

	if opts.verbose {
		utils.SetDebugOutput(cmd.ErrOrStderr())
		defer utils.SetDebugOutput(nil)
	}
	if settings.DebugLog {
		closeLog, err := openDebugLog()
		if err != nil {
			utils.Warn("%v", err)
		} else {
			defer func() { _ = closeLog() }()
		}
	}

	size, err := utils.ParseSize(args[1])
	if err != nil {
		return err
	}

	req := alloc.Request{
		Path:          args[0],
		Size:          size,
		AllowSyscalls: !opts.noSyscall,
	}
	if cmd.Flags().Changed("permissions") {
		mode := uint32(opts.mode)
		req.Mode = &mode
	}

	return punch(req, opts)
}

// applySettings fills in every option not given explicitly on the command line.
func (o *options) applySettings(flags *pflag.FlagSet, settings *config.Settings) error {
	if !flags.Changed("no-syscall") {
		o.noSyscall = settings.NoSyscall
	}
	if !flags.Changed("strict") {
		o.strict = settings.Strict
	}
	if !flags.Changed("verbose") {
		o.verbose = settings.Verbose
	}
	if !flags.Changed("chunk-size") {
		n, err := settings.ChunkBytes()
		if err != nil {
			return err
		}
		o.chunkSize = sizeValue(n)
	}
	return nil
}

func openDebugLog() (func() error, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	return utils.OpenDebugLog(config.GetDebugLogPath())
}

func punch(req alloc.Request, opts *options) (err error) {
	if opts.lock {
		unlock, err := fsutil.Lock(req.Path)
		if err != nil {
			return err
		}
		defer func() {
			if err := unlock(); err != nil {
				utils.Debug("Error releasing lock: %v", err)
			}
		}()
	}

	f, err := fsutil.Create(req.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close error: %w", cerr)
		}
	}()

	if req.Mode != nil {
		if err := fsutil.SetMode(f, *req.Mode); err != nil {
			return err
		}
		utils.Debug("set permissions of %s to %#o", req.Path, *req.Mode)
	}

	allocator := alloc.New(alloc.Options{
		AllowSyscalls: req.AllowSyscalls,
		Strict:        opts.strict,
		ChunkSize:     int64(opts.chunkSize),
	})
	if err := allocator.Allocate(f, req.Size); err != nil {
		return err
	}

	utils.Debug("created %s (%s)", req.Path, utils.FormatSize(req.Size))
	return nil
}
