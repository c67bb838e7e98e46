package gen

// RenderClient emits the generic dispatch helper's source. The helper is
// fixed boilerplate with no per-input branching: four verb accessors funnel
// through one request primitive that joins the configured base URL with a
// relative path, serializes a body when given one, and deserializes the
// response. The base URL is a plain constructor argument; the module holds no
// mutable ambient default.
func RenderClient() string {
	return clientTS
}

const clientTS = `export class Client {
  private baseUrl: string;

  constructor(baseUrl: string) {
    this.baseUrl = baseUrl.replace(/\/+$/, '');
  }

  private async request(method: string, path: string, body?: unknown): Promise<unknown> {
    const init: RequestInit = { method, headers: {} };
    if (body !== undefined) {
      init.headers = { 'Content-Type': 'application/json' };
      init.body = JSON.stringify(body);
    }
    const res = await fetch(this.baseUrl + path, init);
    if (!res.ok) {
      throw new Error(method + ' ' + path + ': HTTP ' + res.status);
    }
    return res.json();
  }

  get(path: string): Promise<unknown> {
    return this.request('GET', path);
  }

  post(path: string, body?: unknown): Promise<unknown> {
    return this.request('POST', path, body);
  }

  put(path: string, body?: unknown): Promise<unknown> {
    return this.request('PUT', path, body);
  }

  delete(path: string): Promise<unknown> {
    return this.request('DELETE', path);
  }
}
`
