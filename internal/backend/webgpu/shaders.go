package webgpu

// Embedded WGSL compute shaders. Storage buffers are f32 only; complex64
// values travel as vec2<f32>.

// workgroupSize is the number of threads per 1D workgroup.
const workgroupSize = 256

// tileDim is the edge of a 2D workgroup tile.
const tileDim = 16

// sbmvBatchedShader computes y[b] = alpha*A[b]*x[b] + beta*y[b] for every
// batch entry. One thread owns one (batch, row) pair. Matrices are symmetric
// band panels in column-major banded storage, packed back to back with a
// fixed stride; x and y are packed contiguous in logical order.
const sbmvBatchedShader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> x: array<f32>;
@group(0) @binding(2) var<storage, read_write> y: array<f32>;

struct Params {
    m: u32,
    k: u32,
    lda: u32,
    uplo: u32,      // 0 = upper, 1 = lower
    batch: u32,
    stride_a: u32,  // elements between consecutive band panels
    alpha: f32,
    beta: f32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let idx = gid.x;
    if (idx >= params.batch * params.m) {
        return;
    }
    let b = idx / params.m;
    let i = i32(idx % params.m);
    let m = i32(params.m);
    let k = i32(params.k);
    let lda = i32(params.lda);
    let a0 = i32(b * params.stride_a);
    let v0 = i32(b * params.m);

    var sum: f32 = 0.0;
    let jlo = max(0, i - k);
    let jhi = min(m - 1, i + k);
    for (var j: i32 = jlo; j <= jhi; j = j + 1) {
        var av: f32;
        if (params.uplo == 0u) {
            // Upper: element (r,c), r <= c, stored at band row k + r - c.
            if (i <= j) {
                av = a[a0 + (k + i - j) + j * lda];
            } else {
                av = a[a0 + (k + j - i) + i * lda];
            }
        } else {
            // Lower: element (r,c), r >= c, stored at band row r - c.
            if (i >= j) {
                av = a[a0 + (i - j) + j * lda];
            } else {
                av = a[a0 + (j - i) + i * lda];
            }
        }
        sum = sum + av * x[v0 + j];
    }

    var out = params.alpha * sum;
    if (params.beta != 0.0) {
        out = out + params.beta * y[v0 + i];
    }
    y[v0 + i] = out;
}
`

// her2kShader computes the Hermitian rank-2k update of C. One thread owns one
// element of the stored triangle; complex64 values travel as vec2<f32>.
const her2kShader = `
@group(0) @binding(0) var<storage, read> a: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read> bm: array<vec2<f32>>;
@group(0) @binding(2) var<storage, read_write> c: array<vec2<f32>>;

struct Params {
    n: u32,
    k: u32,
    lda: u32,
    ldb: u32,
    ldc: u32,
    uplo: u32,   // 0 = upper, 1 = lower
    trans: u32,  // 0 = notrans, 1 = conjtrans
    beta: f32,
    alpha: vec2<f32>,
}
@group(0) @binding(3) var<uniform> params: Params;

fn cmul(p: vec2<f32>, q: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(p.x * q.x - p.y * q.y, p.x * q.y + p.y * q.x);
}

fn conj(p: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(p.x, -p.y);
}

@compute @workgroup_size(16, 16)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let n = i32(params.n);
    let j = i32(gid.x);
    let i = i32(gid.y);
    if (i >= n || j >= n) {
        return;
    }
    // Only the stored triangle is referenced and updated.
    if (params.uplo == 0u && i > j) {
        return;
    }
    if (params.uplo == 1u && i < j) {
        return;
    }

    let k = i32(params.k);
    let lda = i32(params.lda);
    let ldb = i32(params.ldb);
    let ldc = i32(params.ldc);

    var s1 = vec2<f32>(0.0, 0.0);
    var s2 = vec2<f32>(0.0, 0.0);
    if (params.trans == 0u) {
        // C += alpha*A*B^H + conj(alpha)*B*A^H.
        for (var l: i32 = 0; l < k; l = l + 1) {
            s1 = s1 + cmul(a[i + l * lda], conj(bm[j + l * ldb]));
            s2 = s2 + cmul(bm[i + l * ldb], conj(a[j + l * lda]));
        }
    } else {
        // C += alpha*A^H*B + conj(alpha)*B^H*A.
        for (var l: i32 = 0; l < k; l = l + 1) {
            s1 = s1 + cmul(conj(a[l + i * lda]), bm[l + j * ldb]);
            s2 = s2 + cmul(conj(bm[l + i * ldb]), a[l + j * lda]);
        }
    }

    var out = cmul(params.alpha, s1) + cmul(conj(params.alpha), s2);
    let idx = i + j * ldc;
    if (params.beta != 0.0) {
        out = out + params.beta * c[idx];
    }
    if (i == j) {
        // Hermitian diagonal stays real.
        out = vec2<f32>(out.x, 0.0);
    }
    c[idx] = out;
}
`
