// Command pokerjump-gen builds and persists the jump-table trie ahead of
// time, so a long-running process never pays the generation cost on its
// own first request.
package main

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerjump/internal/tablestore"
)

type CLI struct {
	Config string `short:"c" help:"Path to an HCL build config file" optional:""`
	Force  bool   `short:"f" help:"Regenerate even if a valid table file already exists (requires output.overwrite = true in the build config)"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	cfg, err := LoadBuildConfig(cli.Config)
	if err != nil {
		log.Fatal("failed to load build config", "error", err)
	}
	runtime.GOMAXPROCS(cfg.Workers.Count)

	dir := cfg.Output.Dir
	if dir == "" {
		dir = tablestore.DefaultDir()
	}

	if cli.Force {
		path := dir + string(os.PathSeparator) + "jumptable.bin"
		if _, err := os.Stat(path); err == nil && !cfg.Output.OverwriteOK {
			log.Fatal("refusing to replace existing table file without output.overwrite = true", "path", path)
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Fatal("failed to remove existing table file", "path", path, "error", err)
		}
	}

	log.Info("generating hand-rank tables", "dir", dir, "workers", cfg.Workers.Count)
	start := time.Now()

	store := tablestore.New(dir, quartz.NewReal(), log.Default())
	jt, err := store.Load(context.Background())
	if err != nil {
		log.Fatal("table generation failed", "error", err)
	}

	log.Info("done",
		"elapsed", time.Since(start),
		"level5", jt.Level5Size(),
		"level6", jt.Level6Size(),
		"level7", jt.Level7Size(),
	)

	if !cfg.Output.KeepLevel7 {
		log.Debug("keep_level7_mapped disabled; process exit will drop the mapping", "level7", jt.Level7Size())
	}
}
