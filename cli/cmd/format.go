package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mstoeckl/pfafmt"
)

// inPlaceMode follows the invoked-executable-name convention: a
// "pfai"-named binary rewrites files in place, "pfafmt" (or anything
// else) concatenates formatted output to stdout.
func inPlaceMode() bool {
	name := filepath.Base(os.Args[0])
	return len(name) > 0 && name[len(name)-1] == 'i'
}

func runFiles(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "usage: pfafmt [file ...]")
		fmt.Fprintln(cmd.ErrOrStderr(), "       (in place)  pfai [file ...]")
		return errors.New("no file arguments given")
	}

	inPlace := inPlaceMode()
	for _, name := range args {
		if err := runFile(cmd, name, inPlace); err != nil {
			return err
		}
	}
	return nil
}

// runFile formats one file. An open failure, or a failure writing to
// standard output, is fatal to the whole run (spec.md §7); every other
// failure is logged and processing moves on to the next file.
func runFile(cmd *cobra.Command, name string, inPlace bool) error {
	src, err := os.ReadFile(name)
	if err != nil {
		log.Errorf("open %s: %v", name, err)
		return errors.Wrapf(err, "open %s", name)
	}
	log.Infof("formatting %s", name)

	if dumpTokens {
		dumpFileTokens(cmd, name, src)
	}

	out, err := pfafmt.FormatBytes(src)
	if err != nil {
		log.Warnf("format %s: %v", name, err)
		return nil
	}

	if !inPlace {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	if bytes.Equal(src, out) {
		log.Infof("%s already canonical, left unchanged", name)
		return nil
	}
	writeInPlace(name, out)
	return nil
}

// writeInPlace writes out to a uniquely named temporary file beside
// name, copies name's permissions and ownership onto it, then renames
// it over name. Stat/chmod/chown failures only warn; a rename failure
// also removes the temporary (spec.md §7).
func writeInPlace(name string, out []byte) {
	dir := filepath.Dir(name)
	id := uuid.Must(uuid.NewV4())
	tmp := filepath.Join(dir, ".pfafmt-"+id.String())

	if err := os.WriteFile(tmp, out, 0o600); err != nil {
		log.Warnf("write temporary for %s: %v", name, err)
		return
	}

	if st, err := os.Stat(name); err != nil {
		log.Warnf("could not get original permissions for %s: %v", name, err)
	} else {
		if err := os.Chmod(tmp, st.Mode()); err != nil {
			log.Warnf("chmod %s: %v", tmp, err)
		}
		if sys, ok := st.Sys().(*syscall.Stat_t); ok {
			if err := os.Chown(tmp, int(sys.Uid), int(sys.Gid)); err != nil {
				log.Warnf("chown %s: %v", tmp, err)
			}
		}
	}

	if err := os.Rename(tmp, name); err != nil {
		log.Warnf("failed to overwrite %s with %s: %v", name, tmp, err)
		os.Remove(tmp)
		return
	}
	log.Infof("rewrote %s", name)
}
