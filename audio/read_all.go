// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/ezal/utils"
)

// ReadAll16 drains src and returns every sample converted to signed 16-bit
// PCM. Reads happen in chunks of src.BufSize() samples, falling back to 4096
// when the source reports no preference.
//
// The source is not closed; that stays with the caller.
func ReadAll16(src Source) ([]int16, error) {
	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	// Keep reads aligned to whole frames so chained processors never see a
	// partial frame request.
	if ch := src.Channels(); ch > 1 {
		bufSize -= bufSize % ch
		if bufSize == 0 {
			bufSize = ch
		}
	}

	var pcm []int16
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm = append(pcm, utils.Float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			return pcm, nil
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
