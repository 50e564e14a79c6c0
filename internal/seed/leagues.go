package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed leagues.yaml
var defaultLeagues []byte

type LeagueFile struct {
	TeamAliases map[string]string `yaml:"team_aliases"`
	Leagues     []LeagueConfig    `yaml:"leagues"`
}

type LeagueConfig struct {
	Name    string         `yaml:"name"`
	Seasons []SeasonConfig `yaml:"seasons"`
}

// SeasonConfig — источники одного (лига, сезон). PointValues: .csv или книга с листом PointValues_Survivor.
type SeasonConfig struct {
	Label       string       `yaml:"label"`
	Scores      string       `yaml:"scores"`
	PointValues string       `yaml:"point_values"`
	Teams       []TeamConfig `yaml:"teams"`
}

type TeamConfig struct {
	Name    string   `yaml:"name"`
	Players []string `yaml:"players"`
}

// LoadLeagueFile читает YAML с лигами; пустой путь — встроенный файл.
func LoadLeagueFile(path string) (*LeagueFile, error) {
	raw := defaultLeagues
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read league file: %w", err)
		}
		raw = b
	}
	return ParseLeagueFile(raw)
}

func ParseLeagueFile(raw []byte) (*LeagueFile, error) {
	var lf LeagueFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return nil, fmt.Errorf("parse league file: %w", err)
	}
	for _, l := range lf.Leagues {
		if strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("league without name")
		}
		for _, s := range l.Seasons {
			if strings.TrimSpace(s.Label) == "" {
				return nil, fmt.Errorf("league %q: season without label", l.Name)
			}
		}
	}
	return &lf, nil
}

// ResolveTeam сопоставляет заголовок колонки листа с именем команды:
// сначала алиас, затем схлопывание пробелов. false — команды нет в составе.
func (lf *LeagueFile) ResolveTeam(column string, known map[string]int64) (int64, string, bool) {
	candidates := []string{column, collapseSpaces(column)}
	for _, c := range candidates {
		if alias, ok := lf.TeamAliases[c]; ok {
			candidates = append(candidates, alias)
		}
	}
	for _, c := range candidates {
		if id, ok := known[c]; ok {
			return id, c, true
		}
	}
	return 0, "", false
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
