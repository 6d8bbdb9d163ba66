package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mexutil/internal/fixture"
	"github.com/born-ml/mexutil/internal/mex"
	"github.com/born-ml/mexutil/internal/mxarray"
)

func (c *cli) lookup(path string, names ...string) ([]mxarray.Array, error) {
	set, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded fixture", zap.String("path", path), zap.Int("arrays", len(set.Arrays)))

	arrays := make([]mxarray.Array, len(names))
	for i, name := range names {
		if arrays[i], err = set.Lookup(name); err != nil {
			return nil, err
		}
		c.logger.Debug("array",
			zap.String("name", name),
			zap.Stringer("class", arrays[i].ClassID()),
			zap.Bool("sparse", arrays[i].IsSparse()),
			zap.Ints("dims", arrays[i].Dims()))
	}
	return arrays, nil
}

// dimensions calls mex.Dimensions and turns a broken dense precondition into
// a logged error so the command exits non-zero. Any other panic propagates.
func (c *cli) dimensions(name string, array mxarray.Array) (dims []int, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		aerr, ok := r.(*mex.AssertionError)
		if !ok {
			panic(r)
		}
		c.logger.Error("assertion failed", zap.String("array", name), zap.Error(aerr))
		err = errors.Wrapf(aerr, "array %q", name)
	}()
	return mex.Dimensions(array), nil
}

func (c *cli) dimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dims <fixture> <array>",
		Short: "Print the dimensions of an array",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arrays, err := c.lookup(args[0], args[1])
			if err != nil {
				return err
			}
			dims, err := c.dimensions(args[1], arrays[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatInts(dims))
			return nil
		},
	}
}

func (c *cli) expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <fixture> <a> <b>",
		Short: "Print the broadcast slice shape of two arrays",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			arrays, err := c.lookup(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			dimsA, err := c.dimensions(args[1], arrays[0])
			if err != nil {
				return err
			}
			dimsB, err := c.dimensions(args[2], arrays[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatInts(mex.ExpandSlices(dimsA, dimsB)))
			return nil
		},
	}
}

func (c *cli) checkSliceCmd() *cobra.Command {
	var mins, maxs []int
	cmd := &cobra.Command{
		Use:   "check-slice <fixture> <array> --min i,j,... --max k,l,...",
		Short: "Check that an array's slice shape lies within the given bounds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(mins) != len(maxs) {
				return errors.Errorf("--min has %d entries but --max has %d", len(mins), len(maxs))
			}
			arrays, err := c.lookup(args[0], args[1])
			if err != nil {
				return err
			}
			dims, err := c.dimensions(args[1], arrays[0])
			if err != nil {
				return err
			}
			slices := dims[2:]

			valid := mex.IsValidSlice(slices, mins, maxs)
			c.logger.Debug("slice check",
				zap.Ints("slices", slices),
				zap.Ints("min", mins),
				zap.Ints("max", maxs),
				zap.Bool("valid", valid))
			if !valid {
				return errors.Errorf("slice shape [%s] is out of range [%s]..[%s]",
					formatInts(slices), formatInts(mins), formatInts(maxs))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&mins, "min", nil, "lower bound per slice axis")
	cmd.Flags().IntSliceVar(&maxs, "max", nil, "upper bound per slice axis")
	return cmd
}

func (c *cli) checkSizeCmd() *cobra.Command {
	var rows, cols int
	cmd := &cobra.Command{
		Use:   "check-size <fixture> <array>",
		Short: "Check the row and column count of an array",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arrays, err := c.lookup(args[0], args[1])
			if err != nil {
				return err
			}
			r, err := mex.CheckRowsOf(rows, arrays[0])
			if err != nil {
				return err
			}
			cc, err := mex.CheckColsOf(cols, arrays[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", r, cc)
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", mex.Dynamic, "expected rows (-1 accepts any)")
	cmd.Flags().IntVar(&cols, "cols", mex.Dynamic, "expected columns (-1 accepts any)")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <fixture> <array>",
		Short: "Print a double array as a matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arrays, err := c.lookup(args[0], args[1])
			if err != nil {
				return err
			}
			m, err := mex.ToDense(arrays[0], mex.Dynamic, mex.Dynamic)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", mat.Formatted(m))
			return nil
		},
	}
}

func formatInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
