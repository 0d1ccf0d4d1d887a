package handlers

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gamestore/internal/utils/helpers"
)

var reDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AdminLogsHandler читает JSON-логи из LogDir: текущий app.log и ротированные
// lumberjack-файлы app-<timestamp>.log[.gz].
type AdminLogsHandler struct {
	LogDir    string
	Retention int
	now       func() time.Time
}

func NewAdminLogsHandler(dir string, retentionDays int) *AdminLogsHandler {
	if retentionDays <= 0 {
		retentionDays = 7
	}
	return &AdminLogsHandler{LogDir: dir, Retention: retentionDays, now: time.Now}
}

type logEntry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// ListDays godoc
// @Summary Дни, за которые есть записи в логах
// @Tags admin-logs
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /admin/logs/days [get]
func (h *AdminLogsHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	days := map[string]bool{}
	oldest := h.now().AddDate(0, 0, -h.Retention+1).Format("2006-01-02")
	_ = h.forEachLine(func(raw []byte, e logEntry) bool {
		if len(e.Time) >= 10 && e.Time[:10] >= oldest {
			days[e.Time[:10]] = true
		}
		return true
	})
	out := make([]string, 0, len(days))
	for d := range days {
		out = append(out, d)
	}
	sort.Strings(out)
	helpers.JSON(w, http.StatusOK, map[string][]string{"days": out})
}

// GetLogs godoc
// @Summary Записи логов за день
// @Tags admin-logs
// @Security ApiKeyAuth
// @Produce json
// @Param day query string true "Дата (YYYY-MM-DD)"
// @Param level query string false "CSV уровней: debug,info,warn,error"
// @Param q query string false "Поиск по подстроке"
// @Param limit query int false "Лимит (по умолч. 200, макс. 1000)"
// @Param cursor query int false "Сколько совпадений пропустить"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/logs [get]
func (h *AdminLogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if !reDay.MatchString(day) {
		helpers.Error(w, http.StatusBadRequest, "bad day")
		return
	}
	levels := map[string]bool{}
	for _, l := range strings.Split(r.URL.Query().Get("level"), ",") {
		if l = strings.TrimSpace(l); l != "" {
			levels[strings.ToUpper(l)] = true
		}
	}
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	limit := clampAtoi(r.URL.Query().Get("limit"), 200, 1, 1000)
	cursor := clampAtoi(r.URL.Query().Get("cursor"), 0, 0, 10_000_000)

	skipped := 0
	items := make([]json.RawMessage, 0)
	err := h.forEachLine(func(raw []byte, e logEntry) bool {
		if !strings.HasPrefix(e.Time, day) {
			return true
		}
		if len(levels) > 0 && !levels[strings.ToUpper(e.Level)] {
			return true
		}
		if q != "" && !strings.Contains(strings.ToLower(string(raw)), q) {
			return true
		}
		if skipped < cursor {
			skipped++
			return true
		}
		items = append(items, append(json.RawMessage(nil), raw...))
		return len(items) < limit
	})
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "logs not found")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{
		"day":         day,
		"items":       items,
		"next_cursor": cursor + len(items),
	})
}

// Summary godoc
// @Summary Количество записей по уровням за последние дни
// @Tags admin-logs
// @Security ApiKeyAuth
// @Produce json
// @Param days query int false "Количество дней (по умолч. 7)"
// @Success 200 {object} map[string]interface{}
// @Router /admin/logs/summary [get]
func (h *AdminLogsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	days := clampAtoi(r.URL.Query().Get("days"), h.Retention, 1, h.Retention)
	oldest := h.now().AddDate(0, 0, -days+1).Format("2006-01-02")

	total := 0
	levels := map[string]int{}
	byDay := map[string]map[string]int{}
	_ = h.forEachLine(func(raw []byte, e logEntry) bool {
		if len(e.Time) < 10 || e.Time[:10] < oldest || e.Level == "" {
			return true
		}
		lvl := strings.ToUpper(e.Level)
		d := e.Time[:10]
		if byDay[d] == nil {
			byDay[d] = map[string]int{}
		}
		byDay[d][lvl]++
		levels[lvl]++
		total++
		return true
	})
	helpers.JSON(w, http.StatusOK, map[string]any{"total": total, "levels": levels, "by_day": byDay})
}

// logFiles - ротированные файлы по возрастанию имени, затем текущий app.log.
func (h *AdminLogsHandler) logFiles() ([]string, error) {
	entries, err := os.ReadDir(h.LogDir)
	if err != nil {
		return nil, err
	}
	var rotated []string
	current := ""
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case name == "app.log":
			current = filepath.Join(h.LogDir, name)
		case strings.HasPrefix(name, "app-") && (strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".log.gz")):
			rotated = append(rotated, filepath.Join(h.LogDir, name))
		}
	}
	sort.Strings(rotated)
	if current != "" {
		rotated = append(rotated, current)
	}
	if len(rotated) == 0 {
		return nil, os.ErrNotExist
	}
	return rotated, nil
}

// forEachLine отдаёт handle каждую JSON-строку; не-JSON строки пропускаются.
// handle возвращает false, чтобы остановить чтение.
func (h *AdminLogsHandler) forEachLine(handle func(raw []byte, e logEntry) bool) error {
	files, err := h.logFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		if !h.scanFile(path, handle) {
			break
		}
	}
	return nil
}

func (h *AdminLogsHandler) scanFile(path string, handle func(raw []byte, e logEntry) bool) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return true
		}
		defer gr.Close()
		reader = gr
	}

	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var e logEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		if !handle(sc.Bytes(), e) {
			return false
		}
	}
	return true
}

func clampAtoi(s string, def, min, max int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
