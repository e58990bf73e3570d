package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/surge-downloader/punch/internal/alloc"
	"github.com/surge-downloader/punch/internal/fsutil"
	"github.com/surge-downloader/punch/internal/utils"
)

// modeValue is a pflag.Value holding explicit permission bits.
type modeValue uint32

var _ pflag.Value = (*modeValue)(nil)

func (m *modeValue) String() string { return fmt.Sprintf("%#o", uint32(*m)) }

func (m *modeValue) Set(s string) error {
	v, err := fsutil.ParseMode(s)
	if err != nil {
		return err
	}
	*m = modeValue(v)
	return nil
}

func (m *modeValue) Type() string { return "mode" }

// sizeValue is a pflag.Value holding a zero-fill chunk size.
type sizeValue int64

var _ pflag.Value = (*sizeValue)(nil)

func (s *sizeValue) String() string { return utils.FormatSize(int64(*s)) }

func (s *sizeValue) Set(v string) error {
	n, err := utils.ParseSize(v)
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%w: must be greater than zero", utils.ErrInvalidSize)
	}
	if n > alloc.MaxChunkSize {
		return fmt.Errorf("%w: must not exceed %s", utils.ErrInvalidSize, utils.FormatSize(alloc.MaxChunkSize))
	}
	*s = sizeValue(n)
	return nil
}

func (s *sizeValue) Type() string { return "size" }
