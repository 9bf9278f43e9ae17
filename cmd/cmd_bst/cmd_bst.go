package cmd_bst

import (
	"strconv"

	"github.com/rskv-p/kata/act"
	"github.com/rskv-p/kata/cmd/cmd_env"
	"github.com/spf13/cobra"
)

// NewCmd builds the "bst" command group.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bst",
		Short: "Binary search tree operations",
	}
	for _, sub := range []*cobra.Command{newKthCmd(), newSortedCmd(), newDumpCmd()} {
		// Flags end at the first value so "-1" reads as a number.
		sub.Flags().SetInterspersed(false)
		cmd.AddCommand(sub)
	}
	return cmd
}

func newKthCmd() *cobra.Command {
	var (
		k       int
		largest bool
	)
	cmd := &cobra.Command{
		Use:   "kth --k N [values...]",
		Short: "Print the k-th smallest value of the BST built from values",
		Long: "Values are inserted in the order given into an empty BST, " +
			"duplicates ignored. Rank k is 1-based. Flags go before the values; " +
			"use -- when the first value is negative.",
		Example: "  kata bst kth --k 3 5 3 6 2 4\n  kata bst kth --k 1 -- -3 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			op := act.OpKth
			if largest {
				op = act.OpKthLargest
			}
			return cmd_env.RunAction(cmd, act.NewAction(op, append([]string{strconv.Itoa(k)}, args...)...))
		},
	}
	cmd.Flags().IntVar(&k, "k", 1, "1-based rank")
	cmd.Flags().BoolVar(&largest, "largest", false, "count from the largest value instead")
	return cmd
}

func newSortedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sorted [values...]",
		Short: "Print the BST values in ascending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd_env.RunAction(cmd, act.NewAction(act.OpSorted, args...))
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [values...]",
		Short: "Print the shape of the BST built from values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd_env.RunAction(cmd, act.NewAction(act.OpDump, args...))
		},
	}
}
