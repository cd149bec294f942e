package graphics

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// textureInternalFormat keeps the cube textures opaque: decoded pixels are
// always uploaded as RGBA and the alpha channel is dropped on the GPU.
const textureInternalFormat = gl.RGB

// Texture is a 2D texture loaded from an image file
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// LoadTexture creates a texture object and fills it from the image at path.
// The texture uses repeat wrapping, nearest-mipmap minification and nearest
// magnification. If the image cannot be read the texture object is still
// created and left bound with no image data, and the error is returned.
func LoadTexture(path string) (*Texture, error) {
	t := &Texture{}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	rgba, err := DecodeImage(path)
	if err != nil {
		return t, err
	}

	t.Width = rgba.Rect.Dx()
	t.Height = rgba.Rect.Dy()

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		textureInternalFormat,
		int32(t.Width),
		int32(t.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return t, nil
}

// Bind binds the texture to the given texture unit
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture object
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// DecodeImage reads an image file and converts it to tightly packed RGBA rows,
// flipped so that the first row is the bottom of the image.
func DecodeImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("image has no pixels: " + path)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipRows(rgba)

	return rgba, nil
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	stride := img.Stride
	tmp := make([]byte, stride)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*stride : (top+1)*stride]
		b := img.Pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
