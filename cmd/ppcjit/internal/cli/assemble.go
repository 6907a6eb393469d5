package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gwipplinger/avian/internal/asm"
	"github.com/gwipplinger/avian/internal/asm/ppc"
)

func newAssembleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble <script.toml>",
		Short: "Run a linear IR script through the assembler and print the hex-encoded output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFeatureConfig(configPath)
			if err != nil {
				return err
			}

			var script assembleScript
			if _, err := toml.DecodeFile(args[0], &script); err != nil {
				return fmt.Errorf("decode script: %w", err)
			}

			system := asm.PanicSystem{}
			zone := asm.NewZone()
			temps := []asm.Register{ppc.R14, ppc.R15, ppc.R16, ppc.R17}
			client := newPoolClient(temps)

			ctx := asm.NewContext(system, zone, client)

			arch := ppc.NewArchitecture()
			arch.Acquire()
			defer arch.Release()
			actx := ppc.NewArchitectureContext()
			m := ppc.NewAssembler(ctx, arch, actx)

			log.WithFields(map[string]any{
				"ops":             len(script.Ops),
				"extra_reserved":  cfg.ExtraReservedRegisters,
				"include_vestige": cfg.IncludeVestigeTable,
			}).Debug("assembling script")

			for i, op := range script.Ops {
				if err := op.apply(m); err != nil {
					return fmt.Errorf("op %d: %w", i, err)
				}
			}
			m.EndBlock(false)

			size := script.BufferSize
			if size == 0 {
				size = m.Length()
			}
			out := make([]byte, size)
			m.WriteTo(out)

			fmt.Println(hex.EncodeToString(out[:m.Length()]))
			return nil
		},
	}
	return cmd
}
