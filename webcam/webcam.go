// Package webcam grabs single frames from a local camera for label
// printing. It is a thin seam over OpenCV's capture API; everything
// downstream works on plain image buffers.
package webcam

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Capture opens the camera device, reads one frame, and returns it as a
// decoded image. The device is released before returning.
func Capture(deviceID int) (image.Image, error) {
	cam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("webcam: failed to open device %d: %w", deviceID, err)
	}
	defer cam.Close()

	mat := gocv.NewMat()
	defer mat.Close()

	if ok := cam.Read(&mat); !ok || mat.Empty() {
		return nil, fmt.Errorf("webcam: device %d returned no frame", deviceID)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("webcam: failed to convert frame: %w", err)
	}
	return img, nil
}
