// Package audio turns a PCM recording into per-frame byte frequency data.
//
// A recording (WAV or MP3) is decoded to mono samples, a Stream slices
// the most recent analysis window at a frame time, and an Analyser
// reduces the window to byte magnitudes with the conventions of a Web
// Audio AnalyserNode: Blackman window, temporal smoothing, and a linear
// map of [MinDecibels, MaxDecibels] onto [0, 255].
//
//	pcm, err := audio.LoadFile("voice.wav")
//	in, err := audio.NewInput(pcm, audio.DefaultFFTSize)
//	bins := in.FrequencyData(t) // 128 bytes
package audio
