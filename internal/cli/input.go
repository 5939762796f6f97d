package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type input struct {
	Name string
	Data []byte
}

// readInputs reads every named file; no args or "-" reads stdin.
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	inputs := make([]input, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		inputs = append(inputs, input{Name: name, Data: data})
	}
	return inputs, nil
}
