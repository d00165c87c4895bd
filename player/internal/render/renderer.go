package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"MeshWarp/player/internal/meshing"

	"github.com/HugoSmits86/nativewebp"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer é o backend raylib do MeshWarp: mantém a textura do frame de
// vídeo corrente e o modelo GPU construído a partir da última tesselação.
type Renderer struct {
	Texture rl.Texture2D

	model    rl.Model
	hasModel bool
}

// NewRenderer cria a textura de vídeo com as dimensões nativas da fonte.
func NewRenderer(width, height int32) *Renderer {
	r := &Renderer{}

	img := rl.GenImageColor(int(width), int(height), rl.Black)
	r.Texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(r.Texture, rl.FilterBilinear)

	log.Printf("[Renderer] Textura de vídeo criada: %dx%d", width, height)
	return r
}

// Camera retorna a câmera ortográfica do plano de warp: y cobre [-1, 1]
// (Fovy = 2) e o raylib escala x pela razão de aspecto da janela, então
// redimensionamento e tela cheia não exigem recomputação da engine.
func Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: 2},
		Target:     rl.Vector3{X: 0, Y: 0, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       2.0,
		Projection: rl.CameraOrthographic,
	}
}

// UpdateFrame envia o frame decodificado para a textura ativa.
func (r *Renderer) UpdateFrame(pixels []color.RGBA) {
	if len(pixels) == 0 {
		return
	}
	rl.UpdateTexture(r.Texture, pixels)
}

// UploadGeometry substitui o modelo GPU pela geometria tesselada mais
// recente. É chamado apenas quando a versão da malha muda.
func (r *Renderer) UploadGeometry(geo meshing.GeometryData) {
	if !rl.IsWindowReady() {
		return
	}

	if r.hasModel {
		rl.UnloadModel(r.model)
		r.hasModel = false
	}

	if geo.VertexCount() == 0 {
		return
	}

	mesh := r.geometryToMesh(geo)
	rl.UploadMesh(&mesh, false)
	r.model = rl.LoadModelFromMesh(mesh)
	if r.model.MaterialCount > 0 {
		materials := unsafe.Slice(r.model.Materials, r.model.MaterialCount)
		rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, r.Texture)
	}
	r.hasModel = true
}

// Draw desenha o plano de warp. Deve rodar entre BeginMode3D/EndMode3D.
func (r *Renderer) Draw() {
	if !r.hasModel {
		return
	}
	rl.DrawModel(r.model, rl.Vector3{X: 0, Y: 0, Z: 0}, 1.0, rl.White)
}

// geometryToMesh copia os buffers Go para memória C, exigência do raylib
// para UploadMesh (a GPU assume a posse dos ponteiros).
func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(data.VertexCount())
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	mesh.Vertices = nil
	mesh.Normals = nil
	mesh.Colors = nil
	mesh.Texcoords = nil

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(r.copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(r.copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	return mesh
}

func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// Snapshot captura a tela atual e grava um WebP no diretório dado.
// Retorna o caminho do arquivo gravado.
func (r *Renderer) Snapshot(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	img := rl.LoadImageFromScreen()
	goImg := img.ToImage()
	rl.UnloadImage(img)

	path := filepath.Join(dir, fmt.Sprintf("meshwarp_%s.webp", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, goImg, nil); err != nil {
		return "", fmt.Errorf("snapshot: encode: %w", err)
	}
	return path, nil
}

// Unload libera o modelo e a textura.
func (r *Renderer) Unload() {
	if r.hasModel {
		rl.UnloadModel(r.model)
		r.hasModel = false
	}
	rl.UnloadTexture(r.Texture)
}
