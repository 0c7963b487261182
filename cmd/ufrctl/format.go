package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/ufr/internal/buffer"
	"github.com/danmuck/ufr/internal/logging"
	"github.com/spf13/cobra"
)

type formatRow struct {
	Text     string `json:"text" yaml:"text"`
	Size     int    `json:"size" yaml:"size"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

var formatCmd = &cobra.Command{
	Use:   "format <kind:value>...",
	Short: "Render values into a buffer (kinds: u8 i8 u32 i32 f32 str chr)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		buf, err := buffer.New(cfg.BufferOptions(logging.Component("buffer"))...)
		if err != nil {
			return err
		}
		defer buf.Release()

		for _, item := range argv {
			if err := putItem(buf, item); err != nil {
				return fmt.Errorf("format %q: %w", item, err)
			}
		}
		return render(cmd, formatRow{Text: buf.String(), Size: buf.Size(), Capacity: buf.Cap()})
	},
}

func putItem(buf *buffer.Buffer, item string) error {
	kind, value, ok := strings.Cut(item, ":")
	if !ok {
		return fmt.Errorf("want kind:value")
	}
	switch kind {
	case "u8":
		v, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return err
		}
		return buf.PutU8(uint8(v))
	case "i8":
		v, err := strconv.ParseInt(value, 10, 8)
		if err != nil {
			return err
		}
		return buf.PutI8(int8(v))
	case "u32":
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		return buf.PutU32(uint32(v))
	case "i32":
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return err
		}
		return buf.PutI32(int32(v))
	case "f32":
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return err
		}
		return buf.PutF32(float32(v))
	case "str":
		return buf.PutStr(value)
	case "chr":
		if len(value) != 1 {
			return fmt.Errorf("chr wants one byte, got %q", value)
		}
		return buf.PutByte(value[0])
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
