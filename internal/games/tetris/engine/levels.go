package engine

// DefaultSpeedTable returns the frames-per-row gravity interval for levels 0..29:
// a plateau falling by 5 frames per level, then a ramp of groups of three,
// then a floor of 2 frames and a final level at 1.
func DefaultSpeedTable() []int {
	table := make([]int, 0, 30)
	for level := range 9 {
		table = append(table, 48-level*5)
	}
	table = append(table, 6)
	for frames := 5; frames >= 3; frames-- {
		table = append(table, frames, frames, frames)
	}
	for len(table) < 29 {
		table = append(table, 2)
	}
	return append(table, 1)
}

// DefaultLinesTable returns the lines needed to leave each of levels 0..29.
func DefaultLinesTable() []int {
	table := make([]int, 30)
	for i := range table {
		table[i] = 3
	}
	return table
}

// LevelTable pairs the gravity speed curve with the per-level line thresholds.
// A threshold <= 0 disables progression out of that level.
type LevelTable struct {
	Speed []int
	Lines []int
}

// DefaultLevelTable returns the standard tables.
func DefaultLevelTable() LevelTable {
	return LevelTable{Speed: DefaultSpeedTable(), Lines: DefaultLinesTable()}
}

// MaxLevel returns the highest level the speed table defines.
func (lt LevelTable) MaxLevel() int {
	return len(lt.Speed) - 1
}

// SpeedFrames returns the gravity interval for level, clamped to the table.
func (lt LevelTable) SpeedFrames(level int) int {
	return lt.Speed[clampLevel(level, len(lt.Speed))]
}

// LinesToAdvance returns the lines needed to leave level, or 0 when the
// level never advances.
func (lt LevelTable) LinesToAdvance(level int) int {
	if len(lt.Lines) == 0 {
		return 0
	}
	return lt.Lines[clampLevel(level, len(lt.Lines))]
}

func clampLevel(level, n int) int {
	if level < 0 {
		return 0
	}
	if level >= n {
		return n - 1
	}
	return level
}
