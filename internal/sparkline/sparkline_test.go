package sparkline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rows(chart string) []string {
	return strings.Split(strings.TrimSuffix(chart, "\n"), "\n")
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 7, Height(50))
	assert.Equal(t, 6, Height(48))
	assert.Equal(t, 1, Height(1))
}

func TestRender_Empty(t *testing.T) {
	// WHEN
	result := Render([]int{}, 0, 100, 50)

	// THEN
	assert.Equal(t, "", result)
}

func TestRender_Example(t *testing.T) {
	// GIVEN
	history := []int{0, 50, 100}

	// WHEN
	result := Render(history, 0, 100, 50)

	// THEN
	expected := "" +
		"  ▂\n" +
		"  █\n" +
		"  █\n" +
		" ▁█\n" +
		" ██\n" +
		" ██\n" +
		" ██\n"
	assert.Equal(t, expected, result)
}

func TestRender_AllMinimumIsBlank(t *testing.T) {
	// GIVEN
	history := []int{20, 20, 20, 20}

	// WHEN
	result := Render(history, 20, 220, 50)

	// THEN
	for _, row := range rows(result) {
		assert.Equal(t, "    ", row)
	}
}

func TestRender_AllMaximumIsFull(t *testing.T) {
	// GIVEN
	history := []int{100, 100, 100}

	// WHEN
	result := Render(history, 0, 100, 48)

	// THEN
	for _, row := range rows(result) {
		assert.Equal(t, "███", row)
	}
}

func TestRender_AllMaximumWithResidual(t *testing.T) {
	// GIVEN
	history := []int{100, 100}

	// WHEN
	result := Render(history, 0, 100, 50)

	// THEN
	chartRows := rows(result)
	assert.Equal(t, "▂▂", chartRows[0])
	for _, row := range chartRows[1:] {
		assert.Equal(t, "██", row)
	}
}

func TestRender_Dimensions(t *testing.T) {
	for _, length := range []int{1, 7, 50, 500} {
		// GIVEN
		history := make([]int, length)
		for i := range history {
			history[i] = i % 101
		}

		// WHEN
		result := Render(history, 0, 100, 50)

		// THEN
		chartRows := rows(result)
		assert.Len(t, chartRows, 7)
		for _, row := range chartRows {
			assert.Equal(t, length, len([]rune(row)))
		}
		assert.True(t, strings.HasSuffix(result, "\n"))
	}
}

func TestRender_ClampsValuesOutsideOfDomain(t *testing.T) {
	// GIVEN
	history := []int{-50, 250}

	// WHEN
	result := Render(history, 0, 100, 50)

	// THEN
	assert.Equal(t, Render([]int{0, 100}, 0, 100, 50), result)
}

func TestRender_ResidualGlyphs(t *testing.T) {
	// GIVEN
	history := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

	// WHEN
	result := Render(history, 0, 8, 8)

	// THEN
	assert.Equal(t, " ▁▂▃▄▅▆▇█\n", result)
}

func TestRenderLine_Empty(t *testing.T) {
	assert.Equal(t, "", RenderLine(nil, 0, 100, 5, "temperature"))
}

func TestRenderLine(t *testing.T) {
	// WHEN
	result := RenderLine([]int{10, 50, 90}, 0, 100, 5, "temperature")

	// THEN
	assert.NotEmpty(t, result)
	assert.Contains(t, result, "temperature")
}
