package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwipplinger/avian/internal/asm"
	"github.com/gwipplinger/avian/internal/asm/ppc"
)

func newPlanCommand() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "plan <operation>",
		Short: "Print the dispatch-table entry class and Plan() result for an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFeatureConfig(configPath)
			if err != nil {
				return err
			}
			log.WithField("config", configPath).Debug("loaded feature config")

			op, ok := asm.ParseOperation(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}

			actx := ppc.NewArchitectureContext()
			arch := ppc.NewArchitecture()
			arch.Acquire()
			defer arch.Release()

			nullary, unary, binary, ternary := actx.Supported(op)
			fmt.Printf("operation: %s\n", op)
			fmt.Printf("  nullary handler:  %v\n", nullary)
			fmt.Printf("  unary operand types:  %v\n", unary)
			fmt.Printf("  binary operand type pairs: %v\n", binary)
			fmt.Printf("  ternary (a,b) operand type pairs: %v\n", ternary)

			plan := arch.Plan(op, size)
			fmt.Printf("  plan(size=%d): thunk=%v allowedFirst=%v allowedSecond=%v\n",
				size, plan.Thunk, plan.AllowedFirst, plan.AllowedSecond)

			if cfg.IncludeVestigeTable {
				fmt.Println("  (vestigial ARM32 instruction table is compiled in, but unreachable from any table above)")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 4, "operand size in bytes to plan for (4 or 8)")
	return cmd
}
