package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/veriblas/veriblas/blas"
)

// SbmvBatched computes y[b] = alpha*A[b]*x[b] + beta*y[b] on the GPU.
//
// The batch of band panels is packed into a single storage buffer with a
// fixed stride; x and y are packed to contiguous logical order on the host
// before upload (the shader never sees increments) and y is scattered back
// through incY after readback.
func (b *Backend) SbmvBatched(uplo blas.Uplo, m, k int, alpha float32, a [][]float32, lda int, x [][]float32, incX int, beta float32, y [][]float32, incY int) error {
	if !uplo.Valid() {
		return fmt.Errorf("webgpu: sbmv uplo %q: %w", byte(uplo), blas.ErrInvalidValue)
	}
	if m < 0 || k < 0 || lda < k+1 || incX == 0 || incY == 0 {
		return fmt.Errorf("webgpu: sbmv m=%d k=%d lda=%d incx=%d incy=%d: %w", m, k, lda, incX, incY, blas.ErrInvalidValue)
	}
	if len(a) != len(x) || len(a) != len(y) {
		return fmt.Errorf("webgpu: sbmv batch lengths a=%d x=%d y=%d: %w", len(a), len(x), len(y), blas.ErrInvalidValue)
	}

	batch := len(a)
	if batch == 0 || m == 0 || (alpha == 0 && beta == 1) {
		return nil
	}

	strideA := lda*(m-1) + k + 1
	aPacked := make([]float32, batch*strideA)
	xPacked := make([]float32, batch*m)
	yPacked := make([]float32, batch*m)
	for e := 0; e < batch; e++ {
		if len(a[e]) < strideA {
			return fmt.Errorf("webgpu: sbmv batch %d: panel too short: %w", e, blas.ErrInvalidValue)
		}
		copy(aPacked[e*strideA:], a[e][:strideA])
		if err := packStrided(xPacked[e*m:(e+1)*m], x[e], m, incX); err != nil {
			return fmt.Errorf("webgpu: sbmv batch %d x: %w", e, err)
		}
		if err := packStrided(yPacked[e*m:(e+1)*m], y[e], m, incY); err != nil {
			return fmt.Errorf("webgpu: sbmv batch %d y: %w", e, err)
		}
	}

	shader := b.compileShader("sbmv_batched", sbmvBatchedShader)
	pipeline := b.getOrCreatePipeline("sbmv_batched", shader)

	bufferA := b.createBuffer(f32Bytes(aPacked), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()
	bufferX := b.createBuffer(f32Bytes(xPacked), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferX.Release()
	bufferY := b.createBuffer(f32Bytes(yPacked), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer bufferY.Release()

	params := make([]byte, 32)
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[0:4], uint32(m))
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[4:8], uint32(k))
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[8:12], uint32(lda))
	binary.LittleEndian.PutUint32(params[12:16], uploCode(uplo))
	//nolint:gosec // G115: batch count is non-negative
	binary.LittleEndian.PutUint32(params[16:20], uint32(batch))
	//nolint:gosec // G115: stride is non-negative
	binary.LittleEndian.PutUint32(params[20:24], uint32(strideA))
	binary.LittleEndian.PutUint32(params[24:28], math.Float32bits(alpha))
	binary.LittleEndian.PutUint32(params[28:32], math.Float32bits(beta))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	ySize := uint64(len(yPacked) * 4)
	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, uint64(len(aPacked)*4)),
		wgpu.BufferBindingEntry(1, bufferX, 0, uint64(len(xPacked)*4)),
		wgpu.BufferBindingEntry(2, bufferY, 0, ySize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 32),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((batch*m + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(bufferY, ySize)
	if err != nil {
		return fmt.Errorf("webgpu: sbmv readback: %w", blas.ErrExecutionFailed)
	}

	out := bytesF32(resultData)
	for e := 0; e < batch; e++ {
		scatterStrided(y[e], out[e*m:(e+1)*m], m, incY)
	}
	return nil
}

func uploCode(uplo blas.Uplo) uint32 {
	if uplo == blas.Lower {
		return 1
	}
	return 0
}

// packStrided gathers n logical elements of src (stride inc, netlib starting
// index rule for negative increments) into dst.
func packStrided(dst, src []float32, n, inc int) error {
	idx := 0
	if inc < 0 {
		idx = -(n - 1) * inc
	}
	if last := idx + (n-1)*inc; last < 0 || last >= len(src) || idx >= len(src) {
		return fmt.Errorf("vector too short for n=%d inc=%d: %w", n, inc, blas.ErrInvalidValue)
	}
	for j := 0; j < n; j++ {
		dst[j] = src[idx]
		idx += inc
	}
	return nil
}

// scatterStrided writes n logical elements back through the increment.
func scatterStrided(dst, src []float32, n, inc int) {
	idx := 0
	if inc < 0 {
		idx = -(n - 1) * inc
	}
	for j := 0; j < n; j++ {
		dst[idx] = src[j]
		idx += inc
	}
}
