package colorval

import "fmt"

// RGB returns the normalized red, green and blue channels of every entry.
func (c *Color) RGB() [][3]float64 {
	out := make([][3]float64, len(c.entries))
	for i, e := range c.entries {
		out[i] = [3]float64{e.R, e.G, e.B}
	}
	return out
}

// SetRGB replaces red, green and blue, preserving alpha. A single row is
// applied to every entry; otherwise one row per entry is required.
func (c *Color) SetRGB(rows ...[3]float64) error {
	rows, err := broadcast(len(c.entries), rows)
	if err != nil {
		return err
	}
	for i, row := range rows {
		c.entries[i].R, c.entries[i].G, c.entries[i].B = row[0], row[1], row[2]
	}
	c.clampAll()
	return nil
}

// RGBA returns all four normalized channels of every entry.
func (c *Color) RGBA() [][4]float64 {
	out := make([][4]float64, len(c.entries))
	for i, e := range c.entries {
		out[i] = [4]float64{e.R, e.G, e.B, e.A}
	}
	return out
}

// SetRGBA replaces all four channels.
func (c *Color) SetRGBA(rows ...[4]float64) error {
	rows, err := broadcast(len(c.entries), rows)
	if err != nil {
		return err
	}
	for i, row := range rows {
		c.entries[i] = Entry{R: row[0], G: row[1], B: row[2], A: row[3]}
	}
	c.clampAll()
	return nil
}

// RGB8 returns red, green and blue scaled to 0-255.
func (c *Color) RGB8() [][3]uint8 {
	out := make([][3]uint8, len(c.entries))
	for i, e := range c.entries {
		out[i] = [3]uint8{to8(e.R), to8(e.G), to8(e.B)}
	}
	return out
}

// SetRGB8 replaces red, green and blue from 0-255 values, preserving alpha.
func (c *Color) SetRGB8(rows ...[3]uint8) error {
	rows, err := broadcast(len(c.entries), rows)
	if err != nil {
		return err
	}
	for i, row := range rows {
		a := c.entries[i].A
		c.entries[i] = entryFrom8(row[0], row[1], row[2], 0)
		c.entries[i].A = a
	}
	return nil
}

// RGBA8 returns all four channels scaled to 0-255.
func (c *Color) RGBA8() [][4]uint8 {
	out := make([][4]uint8, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.RGBA8()
	}
	return out
}

// SetRGBA8 replaces all four channels from 0-255 values.
func (c *Color) SetRGBA8(rows ...[4]uint8) error {
	rows, err := broadcast(len(c.entries), rows)
	if err != nil {
		return err
	}
	for i, row := range rows {
		c.entries[i] = entryFrom8(row[0], row[1], row[2], row[3])
	}
	return nil
}

// Alpha returns the alpha channel of every entry.
func (c *Color) Alpha() []float64 {
	out := make([]float64, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.A
	}
	return out
}

// SetAlpha replaces alpha only, leaving red, green and blue unchanged.
func (c *Color) SetAlpha(alpha ...float64) error {
	alpha, err := broadcast(len(c.entries), alpha)
	if err != nil {
		return err
	}
	for i, a := range alpha {
		c.entries[i].A = a
	}
	c.clampAll()
	return nil
}

// broadcast expands a single row to n rows, or passes n rows through.
func broadcast[T any](n int, rows []T) ([]T, error) {
	switch len(rows) {
	case n:
		return rows, nil
	case 1:
		out := make([]T, n)
		for i := range out {
			out[i] = rows[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: got %d rows for %d colors", ErrShape, len(rows), n)
}
