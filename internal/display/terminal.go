package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/greenex/sorter-monitor/internal/event"
)

const separatorWidth = 80

// Options configures a Terminal.
type Options struct {
	Color *bool            // nil = detect from w
	Now   func() time.Time // clock for line timestamps
}

// Banner describes the monitor at startup.
type Banner struct {
	URL         string
	SorterID    int
	MaxAttempts int
	Version     string
}

// Terminal writes monitor activity as colored, timestamped lines.
// It implements monitor.Reporter and is safe for concurrent use.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styles styles
	p      *message.Printer
	now    func() time.Time
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer, opts Options) *Terminal {
	r := lipgloss.NewRenderer(w)
	if opts.Color != nil {
		if *opts.Color {
			r.SetColorProfile(termenv.ANSI)
		} else {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Terminal{
		w:      w,
		styles: newStyles(r),
		p:      message.NewPrinter(language.Spanish),
		now:    now,
	}
}

// Banner prints the startup header.
func (t *Terminal) Banner(b Banner) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rule := strings.Repeat("═", separatorWidth)
	t.logf(t.styles.accent, "%s", rule)
	t.logf(t.styles.bright, "WEBSOCKET MONITOR - API GREENEX")
	t.logf(t.styles.accent, "%s", rule)
	t.logf(t.styles.info, "URL: %s", b.URL)
	t.logf(t.styles.info, "Sorter ID: %d", b.SorterID)
	t.logf(t.styles.info, "Reconexión automática: Sí (máx %d intentos)", b.MaxAttempts)
	if b.Version != "" {
		t.logf(t.styles.info, "Versión: %s", b.Version)
	}
	t.logf(t.styles.warn, "Presiona Ctrl+C para salir")
	t.logf(t.styles.accent, "%s", rule)
	t.println("")
}

// Connecting implements monitor.Reporter.
func (t *Terminal) Connecting(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.accent, "Conectando a: %s", url)
}

// Connected implements monitor.Reporter.
func (t *Terminal) Connected(string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.success, "Conexión establecida exitosamente")
	t.separator()
}

// Assignment implements monitor.Reporter.
func (t *Terminal) Assignment(ev *event.AssignmentEvent, s event.Summary) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.separator()
	t.logf(t.styles.event, "EVENTO: %s", ev.Type)
	t.logf(t.styles.info, "Timestamp: %s", ev.Timestamp)
	t.logf(t.styles.info, "Sorter ID: %d", ev.SorterID)
	t.logf(t.styles.bright, "Total SKUs: %s", t.count(s.Total))
	t.logf(t.styles.success, "   ├─ Asignadas: %s", t.count(len(s.Assigned)))
	t.logf(t.styles.warn, "   └─ Disponibles: %s", t.count(s.UnassignedCount))

	if len(s.Assigned) > 0 {
		t.println("")
		t.logf(t.styles.success, "SKUs ASIGNADAS:")
		for i, sku := range s.Assigned {
			prefix := branch(i == len(s.Assigned)-1)
			t.println(
				t.styles.success.Render(prefix+" "+sku.SKU) +
					" → Salida " + t.styles.accent.Render(lane(sku.SealerID)) +
					fmt.Sprintf(" (ID: %d)", sku.ID),
			)
		}
	}

	if s.UnassignedCount > 0 {
		t.println("")
		t.logf(t.styles.warn, "SKUs DISPONIBLES:")
		for i, sku := range s.Unassigned {
			prefix := branch(i == len(s.Unassigned)-1 && s.Remaining == 0)
			t.println(t.styles.warn.Render(prefix+" "+sku.SKU) + fmt.Sprintf(" (ID: %d)", sku.ID))
		}
		if s.Remaining > 0 {
			t.println(t.styles.warn.Render("   └─ ... y " + t.count(s.Remaining) + " más"))
		}
	}

	t.separator()
}

// UnknownMessage implements monitor.Reporter.
func (t *Terminal) UnknownMessage(raw string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.warn, "Mensaje desconocido: %s", raw)
}

// MalformedMessage implements monitor.Reporter.
func (t *Terminal) MalformedMessage(raw string, _ error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.warn, "Error al parsear mensaje: %s", raw)
}

// TransportError implements monitor.Reporter.
func (t *Terminal) TransportError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.errored, "Error de WebSocket: %v", err)
}

// Closed implements monitor.Reporter.
func (t *Terminal) Closed(code int, reason string) {
	if reason == "" {
		reason = "N/A"
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.warn, "Desconectado (código: %d, razón: %s)", code, reason)
}

// Reconnecting implements monitor.Reporter.
func (t *Terminal) Reconnecting(attempt, maxAttempts int, delay time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.warn, "Reintentando conexión en %dms (intento %d/%d)...", delay.Milliseconds(), attempt, maxAttempts)
}

// GaveUp implements monitor.Reporter.
func (t *Terminal) GaveUp(maxAttempts int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.errored, "Máximo de intentos de reconexión alcanzado (%d)", maxAttempts)
}

// Disconnecting implements monitor.Reporter.
func (t *Terminal) Disconnecting() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.warn, "Desconectando...")
}

// Interrupted prints the interrupt notice.
func (t *Terminal) Interrupted() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.println("")
	t.logf(t.styles.warn, "Señal de interrupción recibida")
}

// Goodbye prints the last line before exit.
func (t *Terminal) Goodbye() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logf(t.styles.success, "Adiós!")
}

// logf writes one timestamped line. t.mu must be held.
func (t *Terminal) logf(style lipgloss.Style, format string, args ...any) {
	line := fmt.Sprintf("[%s] %s", t.now().Format("15:04:05"), fmt.Sprintf(format, args...))
	t.println(style.Render(line))
}

// count formats a tally with Spanish digit grouping.
func (t *Terminal) count(n int) string {
	return t.p.Sprint(n)
}

func (t *Terminal) separator() {
	t.println(t.styles.accent.Render(strings.Repeat("═", separatorWidth)))
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.w, s)
}

func branch(last bool) string {
	if last {
		return "   └─"
	}
	return "   ├─"
}

func lane(id *int) string {
	if id == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *id)
}
