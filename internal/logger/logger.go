package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log adalah logger global aplikasi.
var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init menyiapkan logger global. Mode development memakai ConsoleWriter agar mudah dibaca di terminal.
func Init(level string, console bool) {
	var out io.Writer = os.Stdout
	if console {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	Log = zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(lvl)

	Log.Debug().Str("level", lvl.String()).Msg("logger siap")
}

// Nop mematikan log, dipakai di test.
func Nop() {
	Log = zerolog.Nop()
}
