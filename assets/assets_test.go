package assets

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/yohamta/donburi/features/math"
)

const mapHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="10">
`

func levelFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys["levels/"+name] = &fstest.MapFile{Data: []byte(mapHeader + body + "</map>\n")}
	}
	return fsys
}

const spawnGroup = ` <objectgroup id="1" name="PlayerSpawn">
  <object id="1" name="start" x="32" y="48">
   <point/>
  </object>
 </objectgroup>
`

func TestEmbeddedArena(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	i := FindLevel(levels, "arena")
	if i < 0 {
		t.Fatal("arena level not found")
	}
	arena := levels[i]

	if arena.Width != 960 || arena.Height != 640 {
		t.Fatalf("size = %dx%d, want 960x640", arena.Width, arena.Height)
	}
	if len(arena.Walls) != 8 || len(arena.Gaps) != 2 || len(arena.Targets) != 5 || len(arena.PlayerSpawns) != 1 {
		t.Fatalf("walls=%d gaps=%d targets=%d spawns=%d", len(arena.Walls), len(arena.Gaps), len(arena.Targets), len(arena.PlayerSpawns))
	}

	var patroller *TargetSpawn
	for i := range arena.Targets {
		if arena.Targets[i].Name == "patroller-1" {
			patroller = &arena.Targets[i]
		}
	}
	if patroller == nil {
		t.Fatal("patroller-1 missing")
	}
	want := []math.Vec2{{X: 768, Y: 160}, {X: 864, Y: 160}, {X: 864, Y: 256}}
	if len(patroller.Patrol) != len(want) {
		t.Fatalf("patrol = %v, want %v", patroller.Patrol, want)
	}
	for i := range want {
		if patroller.Patrol[i] != want[i] {
			t.Fatalf("patrol = %v, want %v", patroller.Patrol, want)
		}
	}
	if patroller.PatrolDuration != 2 || patroller.Health != 105 {
		t.Fatalf("patroller = %+v", *patroller)
	}
}

func TestLoadLevelGapLanding(t *testing.T) {
	loader := NewLevelLoaderFS(levelFS(map[string]string{
		"gaps.tmx": spawnGroup + ` <objectgroup id="2" name="Gaps">
  <object id="2" name="pit" x="100" y="0" width="32" height="160">
   <properties>
    <property name="landingX" type="float" value="150"/>
    <property name="landingY" type="float" value="40"/>
   </properties>
  </object>
  <object id="3" name="ditch" x="200" y="0" width="16" height="160"/>
 </objectgroup>
`,
	}), "levels")

	level, err := loader.LoadLevel("gaps.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Name != "gaps" || level.Title != "Gaps" {
		t.Fatalf("name = %q title = %q", level.Name, level.Title)
	}
	if len(level.Gaps) != 2 {
		t.Fatalf("gaps = %d, want 2", len(level.Gaps))
	}

	pit, ditch := level.Gaps[0], level.Gaps[1]
	if !pit.HasLanding || pit.Landing != (math.Vec2{X: 150, Y: 40}) {
		t.Fatalf("pit landing = %v (set %v)", pit.Landing, pit.HasLanding)
	}
	if ditch.HasLanding {
		t.Fatal("ditch has a landing it never declared")
	}
	if got := pit.Area.Center(); got != (math.Vec2{X: 116, Y: 80}) {
		t.Fatalf("pit center = %v", got)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		is      error
	}{
		{
			name:    "no spawn",
			body:    ` <objectgroup id="1" name="Walls"/>` + "\n",
			wantErr: "no player spawn",
			is:      ErrNoPlayerSpawn,
		},
		{
			name: "unknown patrol path",
			body: spawnGroup + ` <objectgroup id="2" name="Targets">
  <object id="2" name="lost" x="64" y="64">
   <properties>
    <property name="pathName" value="nowhere"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
`,
			wantErr: `unknown path "nowhere"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLevelLoaderFS(levelFS(map[string]string{"bad.tmx": tt.body}), "levels")
			_, err := loader.LoadLevel("bad.tmx")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestLoadLevelsSortedByName(t *testing.T) {
	loader := NewLevelLoaderFS(levelFS(map[string]string{
		"b.tmx": spawnGroup,
		"a.tmx": spawnGroup,
	}), "levels")

	levels, err := loader.LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	var names []string
	for _, l := range levels {
		names = append(names, l.Name)
	}
	if strings.Join(names, ",") != "a,b" {
		t.Fatalf("levels = %v, want [a b]", names)
	}
	if FindLevel(levels, "b.tmx") != 1 || FindLevel(levels, "c") != -1 {
		t.Fatal("FindLevel mismatch")
	}
}

func TestLoadLevelsEmptyDir(t *testing.T) {
	fsys := fstest.MapFS{"levels/readme.txt": &fstest.MapFile{Data: []byte("nothing")}}
	if _, err := NewLevelLoaderFS(fsys, "levels").LoadLevels(); err == nil {
		t.Fatal("expected an error for a directory without levels")
	}
}
