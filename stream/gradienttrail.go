package stream

// gradientTrail shifts the gradient one trail length over Steps keyframes, so
// a looping track scrolls it along the strip without a seam.
func (d *GeneratorDef) gradientTrail() []*Frame {
	gradient := d.Gradient
	if len(gradient) == 0 {
		gradient = DefaultGradient
	}
	trailLength := d.TrailLength
	if trailLength <= 0 {
		trailLength = 200
	}
	saturation := d.Saturation
	if saturation == 0 {
		saturation = 1.0
	}
	luminance := d.Luminance
	if luminance == 0 {
		luminance = 0.05
	}

	frames := make([]*Frame, d.Steps)
	stride := float64(trailLength) / float64(d.Steps)
	for i := range frames {
		f := NewFrame()
		gradient.Render(f, float64(i)*stride, trailLength, saturation, luminance)
		frames[i] = f
	}
	return frames
}
