package svmaker

import (
	"strconv"

	"github.com/jayeung12/sv-maker/config"
	"github.com/spf13/cobra"
)

// DeleteCmd removes a region: sv-maker delete <start> <end>.
func DeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		cmd.Help()
		stderr.Fatalln("\ndelete requires a start and an end position")
	}

	run(Delete{
		Start: parseCoord(cmd, args[0], "start"),
		End:   parseCoord(cmd, args[1], "end"),
	})
}

// InsertCmd splices bases in: sv-maker insert <position> <sequence>.
func InsertCmd(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		cmd.Help()
		stderr.Fatalln("\ninsert requires a position and a sequence")
	}

	run(Insert{
		Pos: parseCoord(cmd, args[0], "position"),
		Seq: args[1],
	})
}

// InvertCmd reverses a region: sv-maker invert [--complement] <start> <end>.
func InvertCmd(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		cmd.Help()
		stderr.Fatalln("\ninvert requires a start and an end position")
	}
	complement, _ := cmd.Flags().GetBool("complement")

	run(Invert{
		Start:      parseCoord(cmd, args[0], "start"),
		End:        parseCoord(cmd, args[1], "end"),
		Complement: complement,
	})
}

// DuplicateCmd copies a region: sv-maker duplicate <start> <end> <position>,
// or sv-maker duplicate --tandem <start> <end>.
func DuplicateCmd(cmd *cobra.Command, args []string) {
	tandem, _ := cmd.Flags().GetBool("tandem")

	if tandem {
		if len(args) != 2 {
			cmd.Help()
			stderr.Fatalln("\ntandem duplicate requires a start and an end position")
		}

		run(Duplicate{
			Start:  parseCoord(cmd, args[0], "start"),
			End:    parseCoord(cmd, args[1], "end"),
			Tandem: true,
		})
		return
	}

	if len(args) != 3 {
		cmd.Help()
		stderr.Fatalln("\nduplicate requires a start, an end, and an insert position")
	}

	run(Duplicate{
		Start: parseCoord(cmd, args[0], "start"),
		End:   parseCoord(cmd, args[1], "end"),
		Pos:   parseCoord(cmd, args[2], "insert position"),
	})
}

// CopybackCmd builds a copyback genome:
// sv-maker copyback <gend> <breakpoint> <backstart>, or
// sv-maker copyback --snapback <gend> <breakpoint>.
func CopybackCmd(cmd *cobra.Command, args []string) {
	snapback, _ := cmd.Flags().GetBool("snapback")

	if snapback {
		if len(args) != 2 {
			cmd.Help()
			stderr.Fatalln("\nsnapback requires a genome end and a breakpoint")
		}

		run(Copyback{
			End:        parseGenomeEnd(cmd, args[0]),
			Breakpoint: parseCoord(cmd, args[1], "breakpoint"),
			Snapback:   true,
		})
		return
	}

	if len(args) != 3 {
		cmd.Help()
		stderr.Fatalln("\ncopyback requires a genome end, a breakpoint, and a backstart")
	}

	run(Copyback{
		End:        parseGenomeEnd(cmd, args[0]),
		Breakpoint: parseCoord(cmd, args[1], "breakpoint"),
		Backstart:  parseCoord(cmd, args[2], "backstart"),
	})
}

// run reads the input record, applies one operation, and writes the result.
func run(op Operation) {
	conf := config.New()

	rec, err := Read(conf.In)
	if err != nil {
		stderr.Fatalln(err)
	}

	out, err := Apply(rec, op)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err := WriteOutput(conf.Out, out, conf.WrapWidth()); err != nil {
		stderr.Fatalln(err)
	}
}

// parseCoord parses a 1-based coordinate argument, exiting on bad input.
func parseCoord(cmd *cobra.Command, arg, name string) int {
	p, err := strconv.Atoi(arg)
	if err != nil {
		cmd.Help()
		stderr.Fatalf("\n%s must be a number, not %q\n", name, arg)
	}
	return p
}

// parseGenomeEnd parses the 5/3 genome end token, exiting on bad input.
func parseGenomeEnd(cmd *cobra.Command, arg string) GenomeEnd {
	gend, err := ParseGenomeEnd(arg)
	if err != nil {
		cmd.Help()
		stderr.Fatalf("\n%v\n", err)
	}
	return gend
}
