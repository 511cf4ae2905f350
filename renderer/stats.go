package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

type ProgramStat struct {
	// The program name.
	Name string

	// True if the program compiled and linked successfully.
	Valid bool

	// Number of meshes drawn with this program.
	Meshes int
}

type FrameStats struct {
	// Individual program stats.
	Programs []ProgramStat

	// Number of meshes drawn each frame.
	Meshes int

	// Bytes uploaded to vertex buffers.
	VertexBytes int

	// Number of presented frames and issued draw calls.
	Frames    uint64
	DrawCalls uint64

	// Total time spent in the render loop.
	RenderTime time.Duration
}

// Average time spent per frame.
func (s FrameStats) FrameTime() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.RenderTime / time.Duration(s.Frames)
}

// Format stats as a table with one row per program.
func (s FrameStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Program", "Valid", "Meshes"})
	for _, stat := range s.Programs {
		table.Append([]string{
			stat.Name,
			fmt.Sprintf("%t", stat.Valid),
			fmt.Sprintf("%d", stat.Meshes),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d frames", s.Frames),
		fmt.Sprintf("%d draws", s.DrawCalls),
		fmt.Sprintf("%s/frame", s.FrameTime()),
	})

	table.Render()
	return buf.String()
}
